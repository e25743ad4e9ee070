package pipecodec

import "strings"

// Delimiter separates values in a display string.
const Delimiter = "|"

// Separator is the delimiter as written by Encode.
const Separator = " " + Delimiter + " "

const (
	delimiterByte = '|'
	escapeByte    = '\\'
	spaceCutset   = " "
)

// escapedDelimiter is what Encode writes for a literal pipe inside a value.
const escapedDelimiter = `\|`

// Encode joins values into a single display string.
// Literal pipes are written as \| and values are separated by " | ".
// Backslashes are left untouched. An empty or nil slice yields "".
func Encode(values []string) string {
	if len(values) == 0 {
		return ""
	}

	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = strings.ReplaceAll(v, Delimiter, escapedDelimiter)
	}
	return strings.Join(escaped, Separator)
}

// Decode splits a display string back into values.
//
// A pipe preceded by an odd run of backslashes is literal: the last backslash
// of the run is dropped and the pipe is kept. A pipe preceded by an even run
// (or none) splits values and the backslashes stay as typed. Spaces around
// each value are trimmed; tabs are not. Empty values are preserved.
//
// Decode("") returns an empty, non-nil slice.
func Decode(text string) []string {
	values := make([]string, 0, strings.Count(text, Delimiter)+1)
	if text == "" {
		return values
	}

	// Both delimiter and escape are ASCII, so scanning bytes never splits
	// a multi-byte rune.
	buf := make([]byte, 0, len(text))
	run := 0 // consecutive backslashes immediately before text[i]
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == escapeByte:
			run++
			buf = append(buf, c)
			continue
		case c == delimiterByte && run%2 == 1:
			// Replace the escape marker with the literal pipe.
			buf[len(buf)-1] = delimiterByte
		case c == delimiterByte:
			values = append(values, trimValue(buf))
			buf = buf[:0]
		default:
			buf = append(buf, c)
		}
		run = 0
	}
	return append(values, trimValue(buf))
}

func trimValue(b []byte) string {
	return strings.Trim(string(b), spaceCutset)
}
