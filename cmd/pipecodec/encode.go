package main

import (
	"fmt"

	pipecodec "github.com/alnah/go-pipecodec"
	"github.com/alnah/go-pipecodec/internal/config"
	"github.com/alnah/go-pipecodec/internal/hints"
)

// runEncode prints the display string for the given values.
// Without value arguments, values are read from stdin.
func runEncode(args []string, deps *Dependencies) error {
	flags, values, err := parseEncodeFlags(args, deps.Stderr)
	if err != nil {
		return err
	}

	// The config output format only applies to decode.
	inputFormat, err := config.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("--format: %w%s", err, hints.ForInvalidFormat(config.Formats()))
	}

	opts, err := resolveOptions(flags.common, "", deps.Stderr)
	if err != nil {
		return err
	}

	if len(values) == 0 {
		text, err := readStdin(deps, opts.limit)
		if err != nil {
			return err
		}
		values, err = parseValues(text, inputFormat, opts.limit)
		if err != nil {
			return err
		}
	}

	if opts.verbose {
		fmt.Fprintf(deps.Stderr, "Encoding %d values%s\n", len(values), opts.kindLabel())
	}

	fmt.Fprintln(deps.Stdout, pipecodec.Encode(values))
	return nil
}
