package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/whiteelephant/internal/theme"
)

func newThemesCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List bundled themes",
		Long: `List the themes bundled with whiteelephant. Any of them can be passed to
--theme by name, or exported to a CSS file to customize.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range theme.ListEmbeddedThemes() {
				if name == theme.DefaultThemeName {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", name)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.AddCommand(newThemesExportCommand(opts))
	return cmd
}

func newThemesExportCommand(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "export NAME [PATH]",
		Short: "Write a bundled theme to a CSS file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := theme.DefaultPath
			if len(args) == 2 {
				path = args[1]
			}

			if err := theme.Export(args[0], path, force); err != nil {
				return err
			}
			opts.logger.Info("exported theme", "name", args[0], "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s theme to %s\n", args[0], path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}
