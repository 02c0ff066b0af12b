package regexp

import (
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// pcreTokens groups PCRE2-only constructs by the feature they implement,
// based on pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreTokens = []struct {
	feature string
	tokens  []string
}{
	{"lookahead", []string{
		"(?=", "(?!",
		"(*pla:", "(*positive_lookahead:", "(*nla:", "(*negative_lookahead:",
		"(?*", "(*napla:", "(*non_atomic_positive_lookahead:",
	}},
	{"lookbehind", []string{
		"(?<=", "(?<!",
		"(*plb:", "(*positive_lookbehind:", "(*nlb:", "(*negative_lookbehind:",
		"(?<*", "(*naplb:", "(*non_atomic_positive_lookbehind:",
	}},
	{"backreference", []string{`\g`, `\k<`, `\k'`, `\k{`, `(?P=`}},
	{"atomic group", []string{"(?>", "(*atomic:"}},
	{"branch reset", []string{"(?|"}},
	{"conditional", []string{"(?(DEFINE)", "(?("}},
	{"comment", []string{"(?#"}},
	{"recursion", []string{"(?R)", "(?P>", "(?&"}},
	{"extended class", []string{"(?["}},
	{"callout", []string{"(?C"}},
	{"scan substring", []string{"(*scan_substring:", "(*scs:"}},
	{"script run", []string{"(*script_run:", "(*sr:", "(*atomic_script_run:", "(*asr:"}},
	{"backtracking verb", []string{
		"(*ACCEPT)", "(*FAIL)", "(*F)", "(*MARK:", "(*:", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	}},
	{"option setting", []string{
		"(*LIMIT_DEPTH=", "(*LIMIT_HEAP=", "(*LIMIT_MATCH=", "(*CASELESS_RESTRICT)", "(*NOTEMPTY)", "(*NOTEMPTY_ATSTART)",
		"(*NO_AUTO_POSSESS)", "(*NO_DOTSTAR_ANCHOR)", "(*NO_JIT)", "(*NO_START_OPT)", "(*TURKISH_CASING)", "(*UTF)", "(*UCP)",
		"(*CR)", "(*LF)", "(*CRLF)", "(*ANYCRLF)", "(*ANY)", "(*NUL)", "(*BSR_ANYCRLF)", "(*BSR_UNICODE)",
	}},
	{"escape", []string{
		`\C`, `\h`, `\H`, `\v`, `\V`, `\R`, `\X`, `\N`, `\K`, `\e`, `\o{`, `\x{`,
	}},
	{"anchor", []string{`\Z`, `\G`}},
}

// pcreFeature reports whether pattern contains a construct that RE2/coregex
// cannot execute and, if so, which feature it belongs to.
func pcreFeature(pattern string) (string, bool) {
	for _, group := range pcreTokens {
		for _, v := range group.tokens {
			if strings.Contains(pattern, v) {
				return group.feature, true
			}
		}
	}

	// Numbered backreferences (\1 .. \9) outside character classes.
	escaped, inClass := false, false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case escaped:
			if !inClass && c >= '1' && c <= '9' {
				return "backreference", true
			}
			escaped = false
		case c == '\\':
			escaped = true
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		}
	}

	// NOTE(dwisiswant0): Go supports (?P<name>...), and (?<name>...) since
	// Go 1.22, but not (?'name'...).
	if strings.Contains(pattern, "(?'") {
		return "named group", true
	}

	return "", false
}

// expandDots rewrites every unescaped "." outside a character class into
// [\s\S], so it also matches line breaks.
func expandDots(pattern string) string {
	var sb strings.Builder
	sb.Grow(len(pattern))

	escaped, inClass := false, false
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '[':
			inClass = true
		case c == ']':
			inClass = false
		case c == '.' && !inClass:
			sb.WriteString(`[\s\S]`)
			continue
		}
		sb.WriteByte(c)
	}

	return sb.String()
}

// byteOffsets maps the rune offsets reported by regexp2 onto byte offsets of
// the scanned string. A nil value means every rune is a single byte.
type byteOffsets []int

func newByteOffsets(s string) byteOffsets {
	if utf8.RuneCountInString(s) == len(s) {
		return nil
	}

	offs := make([]int, 0, len(s)+1)
	for i := range s {
		offs = append(offs, i)
	}
	return append(offs, len(s))
}

func (o byteOffsets) span(start, length int) (int, int) {
	if o == nil {
		return start, start + length
	}
	return o[start], o[start+length]
}

func (o byteOffsets) groups(groups []regexp2.Group) []int {
	out := make([]int, 0, len(groups)*2)
	for _, g := range groups {
		if len(g.Captures) == 0 {
			out = append(out, -1, -1)
			continue
		}

		start, end := o.span(g.Index, g.Length)
		out = append(out, start, end)
	}
	return out
}
