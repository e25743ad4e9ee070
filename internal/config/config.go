package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	pipecodec "github.com/alnah/go-pipecodec"
	"github.com/alnah/go-pipecodec/internal/fileutil"
	"github.com/alnah/go-pipecodec/internal/wire"
	"github.com/alnah/go-pipecodec/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidFormat   = errors.New("invalid format")
	ErrInvalidKind     = errors.New("invalid setting kind")
	ErrInvalidMaxBytes = errors.New("invalid input size limit")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// appDirName is the directory under os.UserConfigDir searched for named configs.
const appDirName = "pipecodec"

// Value formats. Decode prints in one, encode reads stdin in one.
const (
	FormatLines   = "lines"      // one value per line
	FormatYAML    = "yaml"       // YAML block sequence
	FormatJSON    = wire.JSON    // JSON array
	FormatMsgpack = wire.Msgpack // MessagePack array, binary
	FormatCBOR    = wire.CBOR    // deterministic CBOR array, binary
)

// Input size limits in bytes.
const (
	DefaultMaxBytes = 1 << 20  // 1MB, generous for one text field
	MaxMaxBytes     = 64 << 20 // hard ceiling for maxBytes
)

// Field length limits.
const (
	MaxFormatLength = 10  // "lines", "yaml"
	MaxKindLength   = 100 // "[Suite Teardown]" with room to spare
)

// Config holds CLI configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Setting SettingConfig `yaml:"setting"`
	Input   InputConfig   `yaml:"input"`
}

// OutputConfig defines how decoded values are printed.
type OutputConfig struct {
	Format string `yaml:"format"` // see Formats (empty = lines)
}

// SettingConfig selects the setting kind the values belong to.
type SettingConfig struct {
	Kind string `yaml:"kind"` // display name or alias, e.g. "Force Tags", "force_tags" (empty = none)
}

// InputConfig limits what is read from stdin.
type InputConfig struct {
	MaxBytes int64 `yaml:"maxBytes"` // 0 = DefaultMaxBytes
}

// Formats returns the accepted value formats.
func Formats() []string {
	return append([]string{FormatLines, FormatYAML}, wire.Formats()...)
}

// IsBinary reports whether a format writes non-text bytes.
func IsBinary(format string) bool {
	return format == FormatMsgpack || format == FormatCBOR
}

// ParseFormat normalizes a format name. Matching is case-insensitive and
// "" selects FormatLines.
func ParseFormat(s string) (string, error) {
	if s == "" {
		return FormatLines, nil
	}
	f := strings.ToLower(s)
	if !slices.Contains(Formats(), f) {
		return "", fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidFormat, s, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Validate checks field lengths and enumerated values.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.format", c.Output.Format, MaxFormatLength); err != nil {
		return err
	}
	if c.Output.Format != "" {
		if _, err := ParseFormat(c.Output.Format); err != nil {
			return fmt.Errorf("output.format: %w", err)
		}
	}

	if err := validateFieldLength("setting.kind", c.Setting.Kind, MaxKindLength); err != nil {
		return err
	}
	if c.Setting.Kind != "" {
		if _, err := pipecodec.ParseKind(c.Setting.Kind); err != nil {
			return fmt.Errorf("%w: setting.kind: %v", ErrInvalidKind, err)
		}
	}

	if c.Input.MaxBytes < 0 || c.Input.MaxBytes > MaxMaxBytes {
		return fmt.Errorf("%w: input.maxBytes must be between 0 and %d, got %d", ErrInvalidMaxBytes, MaxMaxBytes, c.Input.MaxBytes)
	}

	return nil
}

// OutputFormat returns the normalized output format, defaulting to lines.
func (c *Config) OutputFormat() string {
	if c.Output.Format == "" {
		return FormatLines
	}
	return strings.ToLower(c.Output.Format)
}

// SettingKind returns the configured kind. ok is false when none is set.
// An unparsable kind returns ErrInvalidKind.
func (c *Config) SettingKind() (kind pipecodec.Kind, ok bool, err error) {
	if c.Setting.Kind == "" {
		return 0, false, nil
	}
	k, err := pipecodec.ParseKind(c.Setting.Kind)
	if err != nil {
		return 0, false, fmt.Errorf("%w: setting.kind: %w", ErrInvalidKind, err)
	}
	return k, true, nil
}

// InputLimit returns the stdin size limit in bytes.
func (c *Config) InputLimit() int64 {
	if c.Input.MaxBytes == 0 {
		return DefaultMaxBytes
	}
	return c.Input.MaxBytes
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration printing lines with no kind selected.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator it is read directly; otherwise the
// name is resolved with SearchPaths.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the candidate files for a config name, in lookup order:
// the working directory first, then the user config directory, each with
// .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}

	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
