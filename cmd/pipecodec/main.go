package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for command dispatch.
var ErrUnknownCommand = errors.New("unknown command")

func main() {
	verbose := wantsVerbose(os.Args[1:])

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultDeps()))
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, deps *Dependencies) int {
	if len(args) < 2 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "encode":
		err = runEncode(rest, deps)
	case "decode":
		err = runDecode(rest, deps)
	case "kinds":
		err = runKinds(rest, deps)
	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "pipecodec %s\n", Version)
	case "help", "-h", "--help":
		err = runHelp(rest, deps)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		printUsage(deps.Stderr)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(deps.Stderr, "error:", err)
	}
	return exitCodeFor(err)
}

// wantsVerbose reports whether -v or --verbose appears before "--".
// Used before dispatch, when no FlagSet exists yet.
func wantsVerbose(args []string) bool {
	for _, a := range args {
		switch a {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}
