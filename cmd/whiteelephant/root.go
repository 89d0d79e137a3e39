package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/whiteelephant/internal/adapter/output"
	"github.com/jmylchreest/whiteelephant/internal/config"
	"github.com/jmylchreest/whiteelephant/internal/render"
	"github.com/jmylchreest/whiteelephant/internal/roster"
	"github.com/jmylchreest/whiteelephant/internal/theme"
	"github.com/jmylchreest/whiteelephant/internal/viewer"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// rootOptions holds global flags and state shared by all commands.
type rootOptions struct {
	verbose    bool
	configPath string

	// Draw flags, shared by the root command, reveal and watch.
	count  int
	input  string
	output string
	theme  string
	noOpen bool
	print  string

	cfg    *config.Config
	logger *slog.Logger

	// opener overrides the configured viewer (tests).
	opener viewer.Opener
}

// Execute builds the command tree and runs it, exiting non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand(&rootOptions{}).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCommand creates the root command. Running it without a subcommand
// performs a draw.
func newRootCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whiteelephant",
		Short: "Draw a random order of names for a white elephant gift exchange",
		Long: `whiteelephant draws a random order of participants from a text file and
renders it as a self-contained HTML page stamped with the draw time.

The roster has one name per line. Anything after a '#' is a comment and
blank lines are ignored.

Examples:
  # Draw everyone and open the page
  whiteelephant

  # Draw the first 5 names from another list with a bundled theme
  whiteelephant -i family.txt -c 5 -t festive

  # Print the order as JSON without opening a browser
  whiteelephant --no-open --print json`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.logger = setupLogger(cmd.ErrOrStderr(), opts.verbose)

			cfg, err := config.LoadConfig(opts.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			opts.cfg = cfg

			if opts.count < 0 {
				return fmt.Errorf("invalid count %d: must be zero (all) or positive", opts.count)
			}
			if opts.print != "" && !output.IsValidFormat(opts.print) {
				return fmt.Errorf("invalid print format %q: must be one of %v", opts.print, output.ValidFormats)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	flags.StringVar(&opts.configPath, "config", "",
		"Path to config file (default: ~/.config/whiteelephant/config.toml)")

	flags.IntVarP(&opts.count, "count", "c", 0,
		"Number of names to draw (0 = all)")
	flags.StringVarP(&opts.input, "input", "i", roster.DefaultPath,
		"File to draw names from (- for stdin)")
	flags.StringVarP(&opts.output, "output", "o", render.DefaultPath,
		"Page to write")
	flags.StringVarP(&opts.theme, "theme", "t", theme.DefaultPath,
		"CSS file to embed, or the name of a bundled theme")
	flags.BoolVar(&opts.noOpen, "no-open", false,
		"Do not open the page after writing it")
	flags.StringVar(&opts.print, "print", "",
		"Also print the draw to stdout (plain, json, yaml)")

	cmd.AddCommand(newRevealCommand(opts))
	cmd.AddCommand(newWatchCommand(opts))
	cmd.AddCommand(newThemesCommand(opts))
	cmd.AddCommand(newInitCommand(opts))

	return cmd
}

// setupLogger configures the global slog logger.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
