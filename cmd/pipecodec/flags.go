package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlags wraps pflag parse failures so they map to ExitUsage.
var ErrInvalidFlags = errors.New("invalid flags")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	kind    string
	quiet   bool
	verbose bool
}

// encodeFlags holds flags for the encode command.
type encodeFlags struct {
	common commonFlags
	format string // stdin format, see config.Formats
}

// decodeFlags holds flags for the decode command.
type decodeFlags struct {
	common commonFlags
	format string // output format, see config.Formats
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.kind, "kind", "k", "", "setting kind, e.g. \"Force Tags\"")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show config and value counts")
}

// newFlagSet creates a FlagSet that reports errors on stderr and returns
// them instead of exiting.
func newFlagSet(name string, stderr io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parseFlagSet parses args, wrapping failures other than --help.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	return nil
}

// parseEncodeFlags parses encode command flags and returns positional args.
func parseEncodeFlags(args []string, stderr io.Writer) (*encodeFlags, []string, error) {
	f := &encodeFlags{}
	fs := newFlagSet("encode", stderr, printEncodeUsage)

	fs.StringVarP(&f.format, "format", "f", "", "stdin format: lines, yaml, json, msgpack, cbor")
	addCommonFlags(fs, &f.common)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseDecodeFlags parses decode command flags and returns positional args.
func parseDecodeFlags(args []string, stderr io.Writer) (*decodeFlags, []string, error) {
	f := &decodeFlags{}
	fs := newFlagSet("decode", stderr, printDecodeUsage)

	fs.StringVarP(&f.format, "format", "f", "", "output format: lines, yaml, json, msgpack, cbor")
	addCommonFlags(fs, &f.common)

	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseKindsFlags parses kinds command flags.
func parseKindsFlags(args []string, stderr io.Writer) ([]string, error) {
	fs := newFlagSet("kinds", stderr, printKindsUsage)
	if err := parseFlagSet(fs, args); err != nil {
		return nil, err
	}
	return fs.Args(), nil
}
