package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/whiteelephant/internal/model"
)

// YAMLFormatter formats a draw as a YAML document.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes the draw as YAML.
func (f *YAMLFormatter) Format(w io.Writer, d *model.Draw) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(d); err != nil {
		return err
	}
	return encoder.Close()
}
