package main

import (
	"errors"
	"os"

	pipecodec "github.com/alnah/go-pipecodec"
	"github.com/alnah/go-pipecodec/internal/config"
	"github.com/alnah/go-pipecodec/internal/fileutil"
	"github.com/alnah/go-pipecodec/internal/yamlutil"
)

// Exit codes for pipecodec CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing or unreadable input
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, fileutil.ErrInputTooLarge) ||
		errors.Is(err, yamlutil.ErrInputTooLarge) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidFormat) ||
		errors.Is(err, config.ErrInvalidKind) ||
		errors.Is(err, config.ErrInvalidMaxBytes) ||
		errors.Is(err, pipecodec.ErrUnknownKind) ||
		errors.Is(err, pipecodec.ErrEmptyKind) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrParseInput) ||
		errors.Is(err, ErrUnknownCommand) {
		return ExitUsage
	}

	return ExitGeneral
}
