package regexp

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Flags modify how a pattern is compiled and applied.
type Flags uint8

const (
	// Global makes scans and replacements visit every non-overlapping match
	// instead of stopping after the first one.
	Global Flags = 1 << iota
	// IgnoreCase matches letters case-insensitively.
	IgnoreCase
	// Multiline lets ^ and $ match at line boundaries.
	Multiline
	// DotAll lets . match line breaks.
	DotAll
)

// None is the empty flag set.
const None Flags = 0

var flagLetters = []struct {
	letter byte
	flag   Flags
}{
	{'g', Global},
	{'i', IgnoreCase},
	{'m', Multiline},
	{'s', DotAll},
}

// ParseFlags converts JavaScript-style flag letters ("g", "gi", "gm", ...)
// into Flags.
func ParseFlags(s string) (Flags, error) {
	var f Flags

next:
	for i := 0; i < len(s); i++ {
		for _, fl := range flagLetters {
			if s[i] != fl.letter {
				continue
			}
			if f.Has(fl.flag) {
				return None, fmt.Errorf("%w: %q in %q", ErrDuplicateFlag, s[i], s)
			}
			f |= fl.flag
			continue next
		}

		return None, fmt.Errorf("%w: %q in %q", ErrUnknownFlag, s[i], s)
	}

	return f, nil
}

// Has reports whether every flag in v is set in f.
func (f Flags) Has(v Flags) bool {
	return f&v == v
}

// String returns the flags as JavaScript-style letters, e.g. "gim".
func (f Flags) String() string {
	var sb strings.Builder
	for _, fl := range flagLetters {
		if f.Has(fl.flag) {
			sb.WriteByte(fl.letter)
		}
	}
	return sb.String()
}

// inline returns the RE2 inline group that enables f, e.g. "(?im)". Global
// has no inline form and is handled by the scan limit instead.
func (f Flags) inline() string {
	var sb strings.Builder
	if f.Has(IgnoreCase) {
		sb.WriteByte('i')
	}
	if f.Has(Multiline) {
		sb.WriteByte('m')
	}
	if f.Has(DotAll) {
		sb.WriteByte('s')
	}
	if sb.Len() == 0 {
		return ""
	}

	return "(?" + sb.String() + ")"
}

// pcreOptions returns the regexp2 options for f. ECMAScript keeps \d, \w and
// \b ASCII-only and anchors $ at the very end, matching coregex. regexp2
// ignores Singleline in that mode, so DotAll is applied by [Flags.pcrePattern]
// instead.
func (f Flags) pcreOptions() regexp2.RegexOptions {
	var opts regexp2.RegexOptions = regexp2.ECMAScript
	if f.Has(IgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if f.Has(Multiline) {
		opts |= regexp2.Multiline
	}
	return opts
}

// pcrePattern returns pattern as regexp2 should compile it under f.
func (f Flags) pcrePattern(pattern string) string {
	if f.Has(DotAll) {
		return expandDots(pattern)
	}
	return pattern
}
