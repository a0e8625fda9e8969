package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	cases := map[string]string{
		"a  b\tc":      "a b c",
		"  leading":    "leading",
		"trailing   ":  "trailing",
		"":             "",
		"   ":          "",
		"one\n\ntwo":   "one two",
		"already fine": "already fine",
	}
	for input, want := range cases {
		if got := NormalizeWhitespace(input); got != want {
			t.Errorf("NormalizeWhitespace(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNormalizeLowerTrimSpace(t *testing.T) {
	if got := NormalizeLowerTrimSpace("  MiXeD  "); got != "mixed" {
		t.Errorf("got %q", got)
	}
}
