package output

import (
	"encoding/json"
	"io"

	"github.com/jmylchreest/whiteelephant/internal/model"
)

// JSONFormatter formats a draw as JSON.
type JSONFormatter struct {
	opts FormatterOptions
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(opts FormatterOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Format writes the draw as a JSON object.
func (f *JSONFormatter) Format(w io.Writer, d *model.Draw) error {
	encoder := json.NewEncoder(w)
	if !f.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(d)
}
