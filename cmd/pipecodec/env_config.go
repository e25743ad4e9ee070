package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-pipecodec/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // PIPECODEC_CONFIG: config file name or path
	Format     string // PIPECODEC_FORMAT: lines or yaml
	Kind       string // PIPECODEC_KIND: setting kind
}

// knownEnvVars lists valid PIPECODEC_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"PIPECODEC_CONFIG": true,
	"PIPECODEC_FORMAT": true,
	"PIPECODEC_KIND":   true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath: os.Getenv("PIPECODEC_CONFIG"),
		Format:     os.Getenv("PIPECODEC_FORMAT"),
		Kind:       os.Getenv("PIPECODEC_KIND"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized PIPECODEC_* variables.
// Helps catch typos like PIPECODEC_FROMAT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "PIPECODEC_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Format != "" && cfg.Output.Format == "" {
		cfg.Output.Format = env.Format
	}
	if env.Kind != "" && cfg.Setting.Kind == "" {
		cfg.Setting.Kind = env.Kind
	}
}
