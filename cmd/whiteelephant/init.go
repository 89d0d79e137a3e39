package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/whiteelephant/internal/theme"
)

const starterRoster = `# White elephant participants, one per line.
# Anything after a '#' is a comment; blank lines are ignored.
Alice
Bob   # brings the fruitcake
Carol
`

func newInitCommand(opts *rootOptions) *cobra.Command {
	var (
		force      bool
		bundled    string
		saveConfig bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter roster and theme",
		Long: `Write a starter roster and a copy of a bundled theme to the paths set by
--input and --theme, ready to edit. Existing files are left alone unless
--force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := resolveSettings(cmd, opts)
			out := cmd.OutOrStdout()

			if err := writeStarter(s.Input, []byte(starterRoster), force); err != nil {
				if !errors.Is(err, fs.ErrExist) {
					return err
				}
				fmt.Fprintf(out, "Kept existing %s\n", s.Input)
			} else {
				fmt.Fprintf(out, "Wrote %s\n", s.Input)
			}

			if err := theme.Export(bundled, s.Theme, force); err != nil {
				if !errors.Is(err, fs.ErrExist) {
					return err
				}
				fmt.Fprintf(out, "Kept existing %s\n", s.Theme)
			} else {
				fmt.Fprintf(out, "Wrote %s (%s theme)\n", s.Theme, bundled)
			}

			if saveConfig {
				if err := opts.cfg.Save(opts.configPath); err != nil {
					return fmt.Errorf("failed to save config: %w", err)
				}
				fmt.Fprintln(out, "Saved config")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	cmd.Flags().StringVar(&bundled, "bundled", theme.DefaultThemeName,
		"Bundled theme to start from")
	cmd.Flags().BoolVar(&saveConfig, "save-config", false,
		"Also write the current configuration to the config file")

	return cmd
}

func writeStarter(path string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
