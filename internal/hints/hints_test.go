package hints

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	userPath := filepath.Join("home", "me", ".config", "pipecodec", "team.yaml")

	tests := []struct {
		name     string
		searched []string
		wantPath bool
	}{
		{
			name:     "suggests user config path",
			searched: []string{"team.yaml", "team.yml", userPath},
			wantPath: true,
		},
		{
			name:     "no user path searched",
			searched: []string{"team.yaml", "team.yml"},
			wantPath: false,
		},
		{
			name:     "nil paths",
			searched: nil,
			wantPath: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.searched)

			if !strings.Contains(hint, "--config") {
				t.Errorf("expected --config suggestion, got %q", hint)
			}
			if got := strings.Contains(hint, "or create "+userPath); got != tt.wantPath {
				t.Errorf("contains user path = %v, want %v (hint %q)", got, tt.wantPath, hint)
			}
		})
	}
}

func TestForUnknownKind(t *testing.T) {
	t.Parallel()

	if got := ForUnknownKind(nil); got != "" {
		t.Errorf("ForUnknownKind(nil) = %q, want empty", got)
	}

	hint := ForUnknownKind([]string{"Force Tags", "Tags"})
	if !strings.Contains(hint, "Force Tags, Tags") {
		t.Errorf("expected joined kinds, got %q", hint)
	}
}

func TestForInvalidFormat(t *testing.T) {
	t.Parallel()

	if got := ForInvalidFormat(nil); got != "" {
		t.Errorf("ForInvalidFormat(nil) = %q, want empty", got)
	}

	hint := ForInvalidFormat([]string{"lines", "yaml"})
	if !strings.Contains(hint, "lines, yaml") {
		t.Errorf("expected joined formats, got %q", hint)
	}
}

func TestForUnquotedText(t *testing.T) {
	t.Parallel()

	if hint := ForUnquotedText(); !strings.Contains(hint, "'a | b'") {
		t.Errorf("expected quoting example, got %q", hint)
	}
}

func TestForNoInput(t *testing.T) {
	t.Parallel()

	if hint := ForNoInput(); !strings.Contains(hint, "stdin") {
		t.Errorf("expected stdin hint, got %q", hint)
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := []string{
		ForConfigNotFound(nil),
		ForUnknownKind([]string{"Tags"}),
		ForInvalidFormat([]string{"lines"}),
		ForUnquotedText(),
		ForNoInput(),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint %q missing standard prefix", h)
		}
	}

	if format("") != "" {
		t.Error("format(\"\") should be empty")
	}
}
