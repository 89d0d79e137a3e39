package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/whiteelephant/internal/tui"
)

func newRevealCommand(opts *rootOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Draw and reveal the order one name at a time",
		Long: `Draw names and announce them in the terminal. Every name starts hidden
and is uncovered one at a time.

Key bindings:
  space/enter/→   Reveal the next name
  ←/backspace     Hide the last revealed name
  a               Reveal all
  r               Hide all
  ?               Show help
  q               Quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := resolveSettings(cmd, opts)

			d, err := drawNames(opts, s, time.Now())
			if err != nil {
				return err
			}

			if write {
				if _, err := renderDraw(opts, s, d); err != nil {
					return err
				}
			}

			return tui.Run(d, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&write, "write", false,
		"Also render the page for this draw")

	return cmd
}
