// Package fileutil provides file, path and input reading helpers.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrInputTooLarge indicates that a reader produced more than the allowed bytes.
var ErrInputTooLarge = errors.New("input exceeds maximum size")

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "team" -> false (name)
//   - "./pipecodec.yaml" -> true (relative path)
//   - "/etc/pipecodec.yaml" -> true (absolute)
//   - "C:\config\pipecodec.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// ReadLimited reads r to EOF, failing once more than limit bytes arrive.
func ReadLimited(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrInputTooLarge, limit)
	}
	return data, nil
}

// TrimFinalNewline removes one trailing "\n" or "\r\n", as left by shells
// and editors at the end of a single-line input.
func TrimFinalNewline(s string) string {
	s, found := strings.CutSuffix(s, "\n")
	if found {
		s = strings.TrimSuffix(s, "\r")
	}
	return s
}
