// Package output provides stdout formatters for a draw.
package output

import (
	"io"

	"github.com/jmylchreest/whiteelephant/internal/model"
)

// Formatter formats a draw for output.
type Formatter interface {
	// Format writes the formatted draw to the writer.
	Format(w io.Writer, d *model.Draw) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// ValidFormats lists the formats accepted on the command line.
var ValidFormats = []FormatType{FormatPlain, FormatJSON, FormatYAML}

// IsValidFormat checks if format is one of ValidFormats.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if string(f) == format {
			return true
		}
	}
	return false
}

// NewFormatter creates a formatter for the specified format type.
// Unknown formats fall back to plain text.
func NewFormatter(format FormatType, opts FormatterOptions) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(opts), nil
	case FormatYAML:
		return NewYAMLFormatter(), nil
	case FormatPlain:
		fallthrough
	default:
		return NewPlainFormatter(opts)
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template  string // Custom per-name template for plain format
	ShowIndex bool   // Show 1-based index prefix
	ShowTime  bool   // Show the draw timestamp footer
	Compact   bool   // Single-line JSON
}

// DefaultFormatterOptions returns sensible defaults for plain output.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		ShowIndex: true,
		ShowTime:  true,
	}
}
