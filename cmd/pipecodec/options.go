package main

import (
	"errors"
	"fmt"
	"io"

	pipecodec "github.com/alnah/go-pipecodec"
	"github.com/alnah/go-pipecodec/internal/config"
	"github.com/alnah/go-pipecodec/internal/fileutil"
	"github.com/alnah/go-pipecodec/internal/hints"
)

// options are the settings a command runs with after merging
// flags, environment, config file and defaults.
type options struct {
	format  string
	kind    pipecodec.Kind
	hasKind bool
	limit   int64
	quiet   bool
	verbose bool
}

// resolveOptions loads config and applies overrides.
// Precedence: CLI flags > env vars > config file > defaults.
func resolveOptions(common commonFlags, format string, stderr io.Writer) (*options, error) {
	env := loadEnvConfig()
	if !common.quiet {
		warnUnknownEnvVars(stderr)
	}

	configName := common.config
	if configName == "" {
		configName = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w%s", err, configHint(err, configName))
		}
		cfg = loaded
		if common.verbose {
			fmt.Fprintf(stderr, "Config: %s\n", configName)
		}
	}

	applyEnvConfig(env, cfg)
	mergeFlags(common, format, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w%s", err, validationHint(err))
	}

	opts := &options{
		format:  cfg.OutputFormat(),
		limit:   cfg.InputLimit(),
		quiet:   common.quiet,
		verbose: common.verbose,
	}
	kind, hasKind, err := cfg.SettingKind()
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, validationHint(err))
	}
	opts.kind, opts.hasKind = kind, hasKind

	if opts.verbose && opts.hasKind {
		fmt.Fprintf(stderr, "Kind: %s\n", opts.kind)
	}
	return opts, nil
}

// mergeFlags applies explicitly set CLI flags over config values.
func mergeFlags(common commonFlags, format string, cfg *config.Config) {
	if format != "" {
		cfg.Output.Format = format
	}
	if common.kind != "" {
		cfg.Setting.Kind = common.kind
	}
}

func configHint(err error, name string) string {
	if !errors.Is(err, config.ErrConfigNotFound) || fileutil.IsFilePath(name) {
		return ""
	}
	return hints.ForConfigNotFound(config.SearchPaths(name))
}

func validationHint(err error) string {
	switch {
	case errors.Is(err, config.ErrInvalidFormat):
		return hints.ForInvalidFormat(config.Formats())
	case errors.Is(err, config.ErrInvalidKind):
		return hints.ForUnknownKind(pipecodec.KindNames())
	}
	return ""
}

// kindLabel formats the selected kind for verbose output.
func (o *options) kindLabel() string {
	if !o.hasKind {
		return ""
	}
	return " (" + o.kind.String() + ")"
}
