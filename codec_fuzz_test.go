package pipecodec

import (
	"slices"
	"strings"
	"testing"
)

// FuzzDecode checks that Decode is total and agrees with Encode on the
// values it produces.
func FuzzDecode(f *testing.F) {
	seeds := []string{
		"",
		"3|values|here",
		" 5 |  values | here|?  ",
		"|2nd||| 5th ||",
		`c:\\sanity\\|\\|\|?`,
		`\\\| x`,
		`\`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, text string) {
		values := Decode(text)

		if text == "" {
			if len(values) != 0 {
				t.Fatalf("Decode(\"\") = %q, want empty", values)
			}
			return
		}
		if want := unescapedPipes(text) + 1; len(values) != want {
			t.Fatalf("Decode(%q) returned %d values, want %d", text, len(values), want)
		}
		for _, v := range values {
			if strings.HasPrefix(v, " ") || strings.HasSuffix(v, " ") {
				t.Fatalf("Decode(%q) value %q has edge spaces", text, v)
			}
		}

		// Values without a backslash before a pipe survive a second pass.
		// A lone empty value encodes to "" and decodes to nothing.
		if slices.ContainsFunc(values, hasEscapedPipe) || slices.Equal(values, []string{""}) {
			return
		}
		again := Decode(Encode(values))
		if !slices.Equal(again, values) {
			t.Fatalf("Decode(Encode(%q)) = %q", values, again)
		}
	})
}

// unescapedPipes counts pipes preceded by an even backslash run.
func unescapedPipes(text string) int {
	n, run := 0, 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\\':
			run++
			continue
		case '|':
			if run%2 == 0 {
				n++
			}
		}
		run = 0
	}
	return n
}

func hasEscapedPipe(v string) bool {
	return strings.Contains(v, `\|`)
}
