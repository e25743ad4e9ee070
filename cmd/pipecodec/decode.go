package main

import (
	"errors"
	"fmt"
	"io"

	pipecodec "github.com/alnah/go-pipecodec"
	"github.com/alnah/go-pipecodec/internal/config"
	"github.com/alnah/go-pipecodec/internal/fileutil"
	"github.com/alnah/go-pipecodec/internal/hints"
	"github.com/alnah/go-pipecodec/internal/wire"
	"github.com/alnah/go-pipecodec/internal/yamlutil"
)

// ErrTooManyArgs indicates decode received the text split across arguments.
var ErrTooManyArgs = errors.New("decode takes a single text argument")

// runDecode prints the values of one display string.
// Without a text argument, the text is read from stdin.
func runDecode(args []string, deps *Dependencies) error {
	flags, positional, err := parseDecodeFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: got %d%s", ErrTooManyArgs, len(positional), hints.ForUnquotedText())
	}

	opts, err := resolveOptions(flags.common, flags.format, deps.Stderr)
	if err != nil {
		return err
	}

	var text string
	if len(positional) == 1 {
		text = positional[0]
	} else {
		text, err = readStdin(deps, opts.limit)
		if err != nil {
			return err
		}
		text = fileutil.TrimFinalNewline(text)
	}

	values := pipecodec.Decode(text)
	if opts.verbose {
		fmt.Fprintf(deps.Stderr, "Decoded %d values%s\n", len(values), opts.kindLabel())
	}

	return writeValues(deps.Stdout, values, opts)
}

// writeValues prints values in the selected output format.
// Structured output is keyed by the kind's display name when a kind is set.
func writeValues(w io.Writer, values []string, opts *options) error {
	if opts.format == config.FormatLines {
		for _, v := range values {
			fmt.Fprintln(w, v)
		}
		return nil
	}

	var doc any = values
	if opts.hasKind {
		doc = map[string][]string{opts.kind.String(): values}
	}

	var data []byte
	var err error
	if opts.format == config.FormatYAML {
		data, err = yamlutil.Marshal(doc)
	} else {
		data, err = marshalWire(doc, opts.format)
	}
	if err != nil {
		return fmt.Errorf("rendering values: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// marshalWire renders doc with a wire codec. Text formats end with a newline.
func marshalWire(doc any, format string) ([]byte, error) {
	codec, err := wire.Lookup(format)
	if err != nil {
		return nil, err
	}
	data, err := codec.Marshal(doc)
	if err != nil {
		return nil, err
	}
	if !config.IsBinary(format) {
		data = append(data, '\n')
	}
	return data, nil
}
