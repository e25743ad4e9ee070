// Package yamlutil wraps YAML parsing to isolate the external dependency.
// Config files are decoded strictly; value lists are rendered as block
// sequences so each value sits on its own line.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any, maxSize int) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > maxSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), maxSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	return unmarshalStrict(data, v, MaxInputSize)
}

func unmarshalStrict(data []byte, v any, maxSize int) error {
	if err := validateInput(data, v, maxSize); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Marshal renders v with indented block sequences and literal style for
// multi-line strings.
func Marshal(v any) ([]byte, error) {
	result, err := yaml.MarshalWithOptions(v,
		yaml.IndentSequence(true),
		yaml.UseLiteralStyleIfMultiline(true),
	)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// UnmarshalSequence decodes a YAML list of strings of at most maxSize bytes.
// A maxSize of zero or less falls back to MaxInputSize.
// Empty input and a null document both yield an empty list.
func UnmarshalSequence(data []byte, maxSize int) ([]string, error) {
	values := []string{}
	if len(data) == 0 {
		return values, nil
	}
	if maxSize <= 0 {
		maxSize = MaxInputSize
	}
	if err := unmarshalStrict(data, &values, maxSize); err != nil {
		return nil, err
	}
	if values == nil {
		values = []string{}
	}
	return values, nil
}
