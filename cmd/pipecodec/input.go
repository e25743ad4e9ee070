package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-pipecodec/internal/config"
	"github.com/alnah/go-pipecodec/internal/fileutil"
	"github.com/alnah/go-pipecodec/internal/hints"
	"github.com/alnah/go-pipecodec/internal/wire"
	"github.com/alnah/go-pipecodec/internal/yamlutil"
)

// Sentinel errors for reading command input.
var (
	ErrNoInput    = errors.New("no input specified")
	ErrReadInput  = errors.New("failed to read input")
	ErrParseInput = errors.New("failed to parse input")
)

// readStdin reads all of stdin within the configured limit.
// It refuses to wait on an interactive terminal.
func readStdin(deps *Dependencies, limit int64) (string, error) {
	if deps.Interactive != nil && deps.Interactive() {
		return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
	}
	data, err := fileutil.ReadLimited(deps.Stdin, limit)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return string(data), nil
}

// parseValues splits stdin content into values according to format.
// lines: one value per line, a final newline does not add an empty value.
// yaml:  a YAML list of strings.
// Wire formats hold an array of strings.
// limit is the stdin size limit already applied by readStdin.
func parseValues(text, format string, limit int64) ([]string, error) {
	switch format {
	case config.FormatYAML:
		values, err := yamlutil.UnmarshalSequence([]byte(text), int(limit))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseInput, err)
		}
		return values, nil
	case config.FormatJSON, config.FormatMsgpack, config.FormatCBOR:
		codec, err := wire.Lookup(format)
		if err != nil {
			return nil, err
		}
		values, err := wire.UnmarshalSequence(codec, []byte(text))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseInput, err)
		}
		return values, nil
	default:
		if text == "" {
			return []string{}, nil
		}
		lines := strings.Split(fileutil.TrimFinalNewline(text), "\n")
		for i, l := range lines {
			lines[i] = strings.TrimSuffix(l, "\r")
		}
		return lines, nil
	}
}
