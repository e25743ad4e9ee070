package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pipecodec <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  encode     Join values into a pipe-delimited text")
	fmt.Fprintln(w, "  decode     Split a pipe-delimited text into values")
	fmt.Fprintln(w, "  kinds      List setting kinds")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pipecodec help <command>' for details on a specific command.")
}

// printCommonUsage prints flags shared by encode and decode.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -k, --kind <name>         Setting kind (see 'pipecodec kinds')")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show config and value counts")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  PIPECODEC_CONFIG, PIPECODEC_FORMAT, PIPECODEC_KIND")
}

// printEncodeUsage prints usage for the encode command.
func printEncodeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pipecodec encode [flags] [value...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Join values with \" | \", escaping literal pipes as \\|.")
	fmt.Fprintln(w, "Without values, reads them from stdin.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -f, --format <s>          Stdin format: lines (default), yaml, json, msgpack, cbor")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printDecodeUsage prints usage for the decode command.
func printDecodeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pipecodec decode [flags] [text]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Split text on unescaped pipes and trim spaces around each value.")
	fmt.Fprintln(w, "Without text, reads it from stdin. Quote the text so the shell")
	fmt.Fprintln(w, "does not treat | as a pipe.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: lines (default), yaml, json, msgpack, cbor")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "lines prints one value per line, so a value containing a newline")
	fmt.Fprintln(w, "reads back as several values. Use yaml or json for multi-line values.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printKindsUsage prints usage for the kinds command.
func printKindsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: pipecodec kinds")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List setting kinds accepted by --kind.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) error {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return nil
	}

	switch args[0] {
	case "encode":
		printEncodeUsage(deps.Stdout)
	case "decode":
		printDecodeUsage(deps.Stdout)
	case "kinds":
		printKindsUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: pipecodec version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: pipecodec help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		printUsage(deps.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
