package regexp

import (
	"strconv"
	"strings"
)

// ExpandString appends template to dst and returns the result, replacing
// references with the text of match in src. match is one element of
// [Regexp.FindAllStringSubmatchIndex].
//
// Recognized references are the same for both engines:
//
//	$$           a literal "$"
//	$& or $0     the whole match
//	$1 .. $99    a numbered group; two digits are read only if that group exists
//	${n}         a numbered group
//	${name}      a named group
//	$<name>      a named group
//
// Anything else following "$" is copied through literally. A group that did
// not participate in the match expands to the empty string.
func (r *Regexp) ExpandString(dst []byte, template, src string, match []int) []byte {
	for {
		i := strings.IndexByte(template, '$')
		if i < 0 {
			break
		}

		dst = append(dst, template[:i]...)
		template = template[i:]

		if strings.HasPrefix(template, "$$") {
			dst = append(dst, '$')
			template = template[2:]
			continue
		}

		group, size, ok := r.reference(template)
		if !ok {
			dst = append(dst, '$')
			template = template[1:]
			continue
		}

		if 2*group+1 < len(match) && match[2*group] >= 0 {
			dst = append(dst, src[match[2*group]:match[2*group+1]]...)
		}
		template = template[size:]
	}

	return append(dst, template...)
}

// reference resolves the reference at the start of tmpl, which begins with
// "$", to a group index and the number of template bytes it spans.
func (r *Regexp) reference(tmpl string) (group, size int, ok bool) {
	if len(tmpl) < 2 {
		return 0, 0, false
	}

	numSubexp := r.NumSubexp()

	switch c := tmpl[1]; {
	case c == '&':
		return 0, 2, true

	case isDigit(c):
		group = int(c - '0')
		if len(tmpl) > 2 && isDigit(tmpl[2]) {
			if two := group*10 + int(tmpl[2]-'0'); two <= numSubexp {
				return two, 3, true
			}
		}
		if group > numSubexp {
			return 0, 0, false
		}
		return group, 2, true

	case c == '{' || c == '<':
		closer := byte('}')
		if c == '<' {
			closer = '>'
		}

		end := strings.IndexByte(tmpl[2:], closer)
		if end <= 0 {
			return 0, 0, false
		}

		name := tmpl[2 : 2+end]
		size = end + 3
		if num, err := strconv.Atoi(name); err == nil {
			if num < 0 || num > numSubexp {
				return 0, 0, false
			}
			return num, size, true
		}
		if idx := r.SubexpIndex(name); idx >= 0 {
			return idx, size, true
		}
	}

	return 0, 0, false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ReplaceString returns a copy of src in which up to [Regexp.Limit] matches
// are replaced by the expansion of template. Use it to honor the [Global]
// flag: non-global patterns replace only their first match.
func (r *Regexp) ReplaceString(src, template string) string {
	return r.replace(src, r.Limit(), template)
}

// ReplaceAllString returns a copy of src in which every match is replaced by
// the expansion of template, regardless of flags.
func (r *Regexp) ReplaceAllString(src, template string) string {
	return r.replace(src, -1, template)
}

func (r *Regexp) replace(src string, n int, template string) string {
	matches := r.FindAllStringSubmatchIndex(src, n)
	if len(matches) == 0 {
		return src
	}

	buf := make([]byte, 0, len(src)+len(template)*len(matches))
	last := 0
	for _, m := range matches {
		buf = append(buf, src[last:m[0]]...)
		buf = r.ExpandString(buf, template, src, m)
		last = m[1]
	}

	return string(append(buf, src[last:]...))
}

// ReplaceAllStringFunc returns a copy of src in which every match has been
// replaced by the return value of repl applied to the matched text. The
// replacement is substituted directly, without expansion.
func (r *Regexp) ReplaceAllStringFunc(src string, repl func(string) string) string {
	matches := r.FindAllStringIndex(src, -1)
	if len(matches) == 0 {
		return src
	}

	var sb strings.Builder
	sb.Grow(len(src))

	last := 0
	for _, m := range matches {
		sb.WriteString(src[last:m[0]])
		sb.WriteString(repl(src[m[0]:m[1]]))
		last = m[1]
	}
	sb.WriteString(src[last:])

	return sb.String()
}
