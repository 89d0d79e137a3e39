package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/jmylchreest/whiteelephant/internal/model"
	"github.com/jmylchreest/whiteelephant/internal/render"
)

// PlainFormatter formats a draw as plain text, one name per line.
type PlainFormatter struct {
	opts     FormatterOptions
	template *template.Template
}

// templateData is what a custom template sees for each name.
type templateData struct {
	Index int
	Name  string
	Draw  *model.Draw
}

// NewPlainFormatter creates a new plain text formatter.
// A custom template that fails to parse is reported as an error.
func NewPlainFormatter(opts FormatterOptions) (*PlainFormatter, error) {
	f := &PlainFormatter{opts: opts}

	if opts.Template != "" {
		tmpl, err := template.New("plain").Funcs(templateFuncs()).Parse(opts.Template)
		if err != nil {
			return nil, fmt.Errorf("invalid output template: %w", err)
		}
		f.template = tmpl
	}

	return f, nil
}

// Format writes the draw as plain text.
func (f *PlainFormatter) Format(w io.Writer, d *model.Draw) error {
	var sb strings.Builder

	for i, name := range d.Names {
		if f.template != nil {
			if err := f.template.Execute(&sb, templateData{Index: i + 1, Name: name, Draw: d}); err != nil {
				return err
			}
			sb.WriteString("\n")
			continue
		}

		if f.opts.ShowIndex {
			sb.WriteString(fmt.Sprintf("%d. ", i+1))
		}
		sb.WriteString(name)
		sb.WriteString("\n")
	}

	if f.opts.ShowTime && f.template == nil {
		sb.WriteString(fmt.Sprintf("Names drawn on %s.\n", render.FormatTimestamp(d.DrawnAt)))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// templateFuncs returns template helper functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"pad": func(width int, s string) string {
			if len(s) >= width {
				return s
			}
			return s + strings.Repeat(" ", width-len(s))
		},
		"timestamp": render.FormatTimestamp,
	}
}
