package regexp

import (
	"errors"
	"testing"
)

func TestParseFlags(t *testing.T) {
	valid := map[string]Flags{
		"":     None,
		"g":    Global,
		"gi":   Global | IgnoreCase,
		"ig":   Global | IgnoreCase,
		"gm":   Global | Multiline,
		"gims": Global | IgnoreCase | Multiline | DotAll,
	}
	for s, want := range valid {
		got, err := ParseFlags(s)
		if err != nil {
			t.Fatalf("ParseFlags(%q): %v", s, err)
		}
		if got != want {
			t.Fatalf("ParseFlags(%q): got %v want %v", s, got, want)
		}
	}

	invalid := map[string]error{
		"gg":  ErrDuplicateFlag,
		"imi": ErrDuplicateFlag,
		"x":   ErrUnknownFlag,
		"gu":  ErrUnknownFlag,
		"G":   ErrUnknownFlag,
	}
	for s, want := range invalid {
		_, err := ParseFlags(s)
		if !errors.Is(err, want) {
			t.Fatalf("ParseFlags(%q): got %v want %v", s, err, want)
		}
	}
}

func TestFlagsString(t *testing.T) {
	all := Global | IgnoreCase | Multiline | DotAll
	cases := map[Flags]string{
		None:                "",
		Global:              "g",
		IgnoreCase | Global: "gi",
		DotAll | Multiline:  "ms",
		all:                 "gims",
	}
	for f, want := range cases {
		if got := f.String(); got != want {
			t.Fatalf("Flags(%d).String(): got %q want %q", f, got, want)
		}

		back, err := ParseFlags(want)
		if err != nil || back != f {
			t.Fatalf("ParseFlags(%q): got %v, %v want %v", want, back, err, f)
		}
	}
}

func TestFlagsInline(t *testing.T) {
	cases := map[Flags]string{
		None:                            "",
		Global:                          "",
		IgnoreCase:                      "(?i)",
		Global | Multiline:              "(?m)",
		IgnoreCase | DotAll:             "(?is)",
		IgnoreCase | Multiline | DotAll: "(?ims)",
	}
	for f, want := range cases {
		if got := f.inline(); got != want {
			t.Fatalf("Flags(%q).inline(): got %q want %q", f.String(), got, want)
		}
	}
}

func TestLimit(t *testing.T) {
	if got := MustCompileFlags("a", Global).Limit(); got != -1 {
		t.Fatalf("Limit global: got %d", got)
	}
	if got := MustCompileFlags("a", IgnoreCase).Limit(); got != 1 {
		t.Fatalf("Limit non-global: got %d", got)
	}
}
