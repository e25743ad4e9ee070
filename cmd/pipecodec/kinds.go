package main

import (
	"fmt"

	pipecodec "github.com/alnah/go-pipecodec"
)

// runKinds lists the setting kind names accepted by --kind.
func runKinds(args []string, deps *Dependencies) error {
	extra, err := parseKindsFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(extra) > 0 {
		return fmt.Errorf("%w: kinds takes no arguments", ErrInvalidFlags)
	}

	for _, name := range pipecodec.KindNames() {
		fmt.Fprintln(deps.Stdout, name)
	}
	return nil
}
