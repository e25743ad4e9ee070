// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and the user config path that was searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "pipecodec"+string(os.PathSeparator)) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnknownKind lists the accepted setting kind names.
func ForUnknownKind(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available kinds: " + strings.Join(available, ", "))
}

// ForInvalidFormat lists the accepted output formats.
func ForInvalidFormat(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available formats: " + strings.Join(available, ", "))
}

// ForUnquotedText is shown when decode receives several arguments, which
// usually means the shell split the text or treated "|" as a pipe.
func ForUnquotedText() string {
	return format("quote the whole text, e.g. pipecodec decode 'a | b'")
}

// ForNoInput is shown when a command would wait on an interactive terminal.
func ForNoInput() string {
	return format("pass values as arguments or pipe them on stdin")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
