package regexp

import (
	"fmt"
	"strconv"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Regexp is a compiled regular expression together with its [Flags]. It
// delegates to either coregex (fast, RE2-compatible) or regexp2
// (PCRE-compatible) depending on the pattern features detected at compile
// time.
//
// A Regexp is never modified after compilation.
type Regexp struct {
	pattern string
	flags   Flags
	feature string
	core    *coregex.Regex
	pcre    *regexp2.Regexp
}

// Compile parses a regular expression without flags. See [CompileFlags].
func Compile(pattern string) (*Regexp, error) {
	return CompileFlags(pattern, None)
}

// CompileFlags parses a regular expression and returns a compiled Regexp.
// Patterns that require PCRE/Perl-only features are compiled with regexp2;
// everything else uses coregex for speed.
func CompileFlags(pattern string, flags Flags) (*Regexp, error) {
	if feature, ok := pcreFeature(pattern); ok {
		re, err := regexp2.Compile(flags.pcrePattern(pattern), flags.pcreOptions())
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrCompile, pattern, err)
		}

		return &Regexp{pattern: pattern, flags: flags, feature: feature, pcre: re}, nil
	}

	re, err := coregex.Compile(flags.inline() + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCompile, pattern, err)
	}

	return &Regexp{pattern: pattern, flags: flags, core: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string) *Regexp {
	return MustCompileFlags(pattern, None)
}

// MustCompileFlags is like CompileFlags but panics if the expression cannot
// be parsed.
func MustCompileFlags(pattern string, flags Flags) *Regexp {
	re, err := CompileFlags(pattern, flags)
	if err != nil {
		panic(err)
	}
	return re
}

// String returns the source pattern used to compile the Regexp, without
// flags.
func (r *Regexp) String() string {
	return r.pattern
}

// Flags returns the flags the Regexp was compiled with.
func (r *Regexp) Flags() Flags {
	return r.flags
}

// Feature names the construct that forced the regexp2 engine, such as
// "lookahead" or "backreference". It is empty for coregex patterns.
func (r *Regexp) Feature() string {
	return r.feature
}

// Limit returns the number of matches scans and replacements should visit:
// -1 (all of them) for [Global] patterns, 1 otherwise.
func (r *Regexp) Limit() int {
	if r.flags.Has(Global) {
		return -1
	}
	return 1
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindString returns the leftmost match of the Regexp in s, or "" if there
// is none.
func (r *Regexp) FindString(s string) string {
	loc := r.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	return s[loc[0]:loc[1]]
}

// FindStringIndex returns a two-element slice with the start and end byte
// offsets of the leftmost match in s, or nil.
func (r *Regexp) FindStringIndex(s string) []int {
	if r.core != nil {
		return r.core.FindStringIndex(s)
	}

	all := r.FindAllStringIndex(s, 1)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// FindAllStringIndex returns the byte offsets of up to n successive
// non-overlapping matches in s, or all of them if n < 0.
func (r *Regexp) FindAllStringIndex(s string, n int) [][]int {
	if r.core != nil {
		return r.core.FindAllStringIndex(s, n)
	}

	var out [][]int
	r.scan(s, n, func(offs byteOffsets, m *regexp2.Match) {
		start, end := offs.span(m.Index, m.Length)
		out = append(out, []int{start, end})
	})
	return out
}

// FindAllStringSubmatchIndex returns, for up to n successive matches in s,
// the byte offset pairs of the whole match followed by every capture group.
// Groups that did not participate in a match are reported as -1, -1.
func (r *Regexp) FindAllStringSubmatchIndex(s string, n int) [][]int {
	if r.core != nil {
		return r.core.FindAllStringSubmatchIndex(s, n)
	}

	var out [][]int
	r.scan(s, n, func(offs byteOffsets, m *regexp2.Match) {
		out = append(out, offs.groups(m.Groups()))
	})
	return out
}

// NumSubexp returns the number of parenthesized subexpressions in this
// Regexp.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		return r.core.NumSubexp()
	}

	return len(r.pcre.GetGroupNumbers()) - 1
}

// SubexpNames returns the names of the parenthesized subexpressions in this
// Regexp. The name for the first sub-expression is names[1]; unnamed groups
// have an empty name.
func (r *Regexp) SubexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	nums := r.pcre.GetGroupNumbers()
	names := make([]string, len(nums))
	for i, num := range nums {
		name := r.pcre.GroupNameFromNumber(num)
		if name == strconv.Itoa(num) {
			name = ""
		}
		names[i] = name
	}

	return names
}

// SubexpIndex returns the index of the first subexpression with the given
// name, or -1 if there is none.
func (r *Regexp) SubexpIndex(name string) int {
	if name == "" {
		return -1
	}

	for i, v := range r.SubexpNames() {
		if v == name {
			return i
		}
	}
	return -1
}

// scan walks up to n regexp2 matches of s in order. A matcher error (only a
// timeout in practice) ends the walk early.
func (r *Regexp) scan(s string, n int, fn func(byteOffsets, *regexp2.Match)) {
	if n == 0 {
		return
	}

	offs := newByteOffsets(s)
	count := 0

	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		fn(offs, m)
		count++
		if n > 0 && count >= n {
			return
		}

		m, err = r.pcre.FindNextMatch(m)
	}
}
