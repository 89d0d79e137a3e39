package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/whiteelephant/internal/roster"
	"github.com/jmylchreest/whiteelephant/internal/watch"
)

func newWatchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Redraw whenever the roster or theme changes",
		Long: `Render a draw, then draw again and rewrite the page each time the roster
or theme file changes. The page is opened once, on the first draw.

Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := resolveSettings(cmd, opts)
			if s.Input == roster.Stdin {
				return errors.New("watch needs a roster file, not stdin")
			}

			redraw := func() (string, error) {
				d, err := drawNames(opts, s, time.Now())
				if err != nil {
					return "", err
				}
				path, err := renderDraw(opts, s, d)
				if err != nil {
					return "", err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Drew %d of %d names into %s\n", d.Count(), d.Total, path)
				return path, printDraw(cmd.OutOrStdout(), s, d)
			}

			path, err := redraw()
			if err != nil {
				return err
			}
			openPage(cmd.Context(), opts, s, path)

			paths := []string{s.Input}
			// Bundled themes have no file to watch.
			if _, err := os.Stat(s.Theme); err == nil {
				paths = append(paths, s.Theme)
			}

			w, err := watch.New(paths, opts.cfg.Watch.Debounce.Duration(), opts.logger)
			if err != nil {
				return err
			}

			opts.logger.Info("watching for changes", "files", paths)
			return w.Run(cmd.Context(), func(changed string) {
				opts.logger.Debug("redrawing", "changed", changed)
				if _, err := redraw(); err != nil {
					// Keep watching: the file may be mid-edit.
					opts.logger.Error("redraw failed", "error", err)
				}
			})
		},
	}
}
