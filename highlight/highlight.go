package highlight

import (
	"fmt"
	"strings"

	"go.dw1.io/regexbook/regexp"
)

// Span is a half-open byte range [Start, End) of the scanned text. Both
// offsets are -1 for a capture group that did not take part in a match.
type Span struct {
	Start int
	End   int
}

// Matched reports whether the span refers to text.
func (s Span) Matched() bool {
	return s.Start >= 0
}

// Text returns the part of text covered by the span.
func (s Span) Text(text string) string {
	if !s.Matched() {
		return ""
	}
	return text[s.Start:s.End]
}

// Match is one occurrence of a pattern: the span of the whole match and the
// spans of its capture groups. Groups[0] is the first group.
type Match struct {
	Span
	Groups []Span
}

// Group returns the span of capture group n, where 0 is the whole match.
func (m Match) Group(n int) Span {
	if n == 0 {
		return m.Span
	}
	if n < 0 || n > len(m.Groups) {
		return Span{Start: -1, End: -1}
	}
	return m.Groups[n-1]
}

// Matches returns the matches [Highlight] would mark, in order of
// occurrence.
func Matches(text string, re *regexp.Regexp) []Match {
	locs := re.FindAllStringSubmatchIndex(text, re.Limit())
	if len(locs) == 0 {
		return nil
	}

	out := make([]Match, len(locs))
	for i, loc := range locs {
		out[i].Span = Span{Start: loc[0], End: loc[1]}
		if len(loc) <= 2 {
			continue
		}

		out[i].Groups = make([]Span, 0, len(loc)/2-1)
		for j := 2; j+1 < len(loc); j += 2 {
			out[i].Groups = append(out[i].Groups, Span{Start: loc[j], End: loc[j+1]})
		}
	}

	return out
}

// Highlight returns a copy of text in which every match of re is wrapped in
// the configured markers. Adjacent matches get a marker pair each. Text
// without matches is returned unchanged.
func Highlight(text string, re *regexp.Regexp, opts ...Option) string {
	o := newOptions(opts)

	locs := re.FindAllStringIndex(text, re.Limit())
	if len(locs) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(locs)*(len(o.open)+len(o.close)))

	last := 0
	for _, loc := range locs {
		sb.WriteString(text[last:loc[0]])
		o.mark(&sb, text[loc[0]:loc[1]])
		last = loc[1]
	}
	sb.WriteString(text[last:])

	return sb.String()
}

// HighlightSubmatch is like [Highlight] but replaces each whole match with
// the marked text of capture group group only. Group 0 is the whole match,
// which makes it equivalent to Highlight. A group that did not participate
// in a match yields an empty marker pair.
func HighlightSubmatch(text string, re *regexp.Regexp, group int, opts ...Option) (string, error) {
	if group < 0 || group > re.NumSubexp() {
		return "", fmt.Errorf("%w: group %d, pattern %q has %d", ErrGroupRange, group, re.String(), re.NumSubexp())
	}

	o := newOptions(opts)

	matches := Matches(text, re)
	if len(matches) == 0 {
		return text, nil
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(matches)*(len(o.open)+len(o.close)))

	last := 0
	for _, m := range matches {
		sb.WriteString(text[last:m.Start])
		o.mark(&sb, m.Group(group).Text(text))
		last = m.End
	}
	sb.WriteString(text[last:])

	return sb.String(), nil
}

// Replace substitutes template for the matches of re, honoring its
// [regexp.Global] flag. See [regexp.Regexp.ExpandString] for the template
// syntax.
func Replace(text string, re *regexp.Regexp, template string) string {
	return re.ReplaceString(text, template)
}

func (o options) mark(sb *strings.Builder, s string) {
	sb.WriteString(o.open)
	sb.WriteString(s)
	sb.WriteString(o.close)
}
