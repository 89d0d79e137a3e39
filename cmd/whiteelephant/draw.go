package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/whiteelephant/internal/adapter/output"
	"github.com/jmylchreest/whiteelephant/internal/core"
	"github.com/jmylchreest/whiteelephant/internal/model"
	"github.com/jmylchreest/whiteelephant/internal/render"
	"github.com/jmylchreest/whiteelephant/internal/roster"
	"github.com/jmylchreest/whiteelephant/internal/theme"
	"github.com/jmylchreest/whiteelephant/internal/viewer"
)

// drawSettings is the config file overlaid with flags set on the command line.
type drawSettings struct {
	Input         string
	Output        string
	Theme         string
	Count         int
	Open          bool
	ViewerCommand string
	Format        string
	Template      string
}

func resolveSettings(cmd *cobra.Command, opts *rootOptions) drawSettings {
	cfg := opts.cfg
	s := drawSettings{
		Input:         cfg.Draw.Input,
		Output:        cfg.Draw.Output,
		Theme:         cfg.Draw.Theme,
		Count:         cfg.Draw.Count,
		Open:          cfg.Viewer.Open,
		ViewerCommand: cfg.Viewer.Command,
		Format:        cfg.Output.Format,
		Template:      cfg.Output.Template,
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		s.Input = opts.input
	}
	if flags.Changed("output") {
		s.Output = opts.output
	}
	if flags.Changed("theme") {
		s.Theme = opts.theme
	}
	if flags.Changed("count") {
		s.Count = opts.count
	}
	if flags.Changed("print") {
		s.Format = opts.print
	}
	if opts.noOpen {
		s.Open = false
	}

	return s
}

func runDraw(cmd *cobra.Command, opts *rootOptions) error {
	s := resolveSettings(cmd, opts)

	d, err := drawNames(opts, s, time.Now())
	if err != nil {
		return err
	}

	path, err := renderDraw(opts, s, d)
	if err != nil {
		return err
	}

	if err := printDraw(cmd.OutOrStdout(), s, d); err != nil {
		return err
	}

	openPage(cmd.Context(), opts, s, path)
	return nil
}

// drawNames loads the roster and draws from it.
func drawNames(opts *rootOptions, s drawSettings, now time.Time) (*model.Draw, error) {
	names, err := roster.Load(s.Input)
	if err != nil {
		return nil, err
	}

	d, err := core.Draw(names, s.Count, now)
	if err != nil {
		return nil, err
	}

	opts.logger.Debug("drew names",
		"id", d.ID,
		"input", s.Input,
		"loaded", d.Total,
		"drawn", d.Count())
	return d, nil
}

// renderDraw resolves the theme and writes the page for d.
func renderDraw(opts *rootOptions, s drawSettings, d *model.Draw) (string, error) {
	t, err := theme.Load(s.Theme)
	if err != nil {
		return "", err
	}
	opts.logger.Debug("loaded theme", "name", t.Name, "bundled", t.IsBundled, "path", t.Path)

	path, err := render.WriteFile(s.Output, render.Page{
		Names:   d.Names,
		CSS:     t.CSS,
		DrawnAt: d.DrawnAt,
	})
	if err != nil {
		return "", err
	}

	if info, err := os.Stat(path); err == nil {
		opts.logger.Info("wrote page", "path", path, "size", humanize.Bytes(uint64(info.Size())))
	}
	return path, nil
}

// printDraw writes the draw to w when an output format is configured.
func printDraw(w io.Writer, s drawSettings, d *model.Draw) error {
	if s.Format == "" {
		return nil
	}

	opts := output.DefaultFormatterOptions()
	opts.Template = s.Template

	formatter, err := output.NewFormatter(output.FormatType(s.Format), opts)
	if err != nil {
		return err
	}
	if err := formatter.Format(w, d); err != nil {
		return fmt.Errorf("failed to print draw: %w", err)
	}
	return nil
}

// openPage runs the post-render hook. Failing to open is not fatal: the
// page has already been written.
func openPage(ctx context.Context, opts *rootOptions, s drawSettings, path string) {
	opener := opts.opener
	if opener == nil {
		opener = viewer.New(s.Open, s.ViewerCommand)
	} else if !s.Open {
		opener = viewer.Nop{}
	}

	if err := opener.Open(ctx, path); err != nil {
		opts.logger.Warn("failed to open page", "path", path, "error", err)
	}
}
