// Package yamlutil holds the YAML settings shared by config loading and the
// yaml output format.
package yamlutil

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps the size of a config file (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

// Code blocks keep their line breaks as literal blocks.
var encodeOptions = []yaml.EncodeOption{
	yaml.Indent(2),
	yaml.UseLiteralStyleIfMultiline(true),
}

// UnmarshalStrict decodes data into v and rejects keys v does not declare.
// Fields of v missing from data keep their current values, which lets a
// caller decode over a populated default.
func UnmarshalStrict(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrNilData
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}

	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// Encode writes v to w as one YAML document.
func Encode(w io.Writer, v any) error {
	if err := yaml.NewEncoder(w, encodeOptions...).Encode(v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
