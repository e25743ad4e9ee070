package main

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/alnah/go-pipecodec/internal/config"
	"github.com/alnah/go-pipecodec/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestParseValues - Stdin content to values
// ---------------------------------------------------------------------------

func TestParseValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		format  string
		want    []string
		wantErr error
	}{
		{name: "empty lines input", text: "", format: "lines", want: []string{}},
		{name: "single line", text: "a | b\n", format: "lines", want: []string{"a | b"}},
		{name: "crlf lines", text: "a\r\nb\r\n", format: "lines", want: []string{"a", "b"}},
		{name: "blank line kept", text: "a\n\nb", format: "lines", want: []string{"a", "", "b"}},
		{name: "yaml list", text: "[x, 'y | z']", format: "yaml", want: []string{"x", "y | z"}},
		{name: "empty yaml", text: "", format: "yaml", want: []string{}},
		{name: "yaml mapping", text: "a: b", format: "yaml", wantErr: ErrParseInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseValues(tt.text, tt.format, config.DefaultMaxBytes)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseValues() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseValues() unexpected error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseValues() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReadStdin - Terminal refusal and read errors
// ---------------------------------------------------------------------------

func TestReadStdin(t *testing.T) {
	t.Parallel()

	t.Run("reads piped input", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps("a|b\n", false)
		got, err := readStdin(deps, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "a|b\n" {
			t.Errorf("got %q, want %q", got, "a|b\n")
		}
	})

	t.Run("nil Interactive reads input", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps("x", false)
		deps.Interactive = nil
		if _, err := readStdin(deps, 100); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("terminal is refused", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps("", true)
		_, err := readStdin(deps, 100)
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("error = %v, want ErrNoInput", err)
		}
	})

	t.Run("read failure", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps("", false)
		deps.Stdin = iotest.ErrReader(errors.New("closed"))
		_, err := readStdin(deps, 100)
		if !errors.Is(err, ErrReadInput) {
			t.Errorf("error = %v, want ErrReadInput", err)
		}
	})

	t.Run("limit exceeded", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(strings.Repeat("x", 11), false)
		_, err := readStdin(deps, 10)
		if !errors.Is(err, ErrReadInput) || !errors.Is(err, fileutil.ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrReadInput wrapping ErrInputTooLarge", err)
		}
	})
}
