package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/retree/cmd/retree/commands"
	"github.com/walteh/retree/cmd/retree/opts"
	"github.com/walteh/retree/pkg/log"
)

// newRootCmd builds the command tree around shared options
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retree",
		Short: "Apply ordered literal replacements across a source tree",
		Long: `retree walks a directory tree and rewrites every matching file with an
ordered table of literal replacements. Files are written only when their
content changes.

Built-in presets cover the Retro Music to HOA Music rebrand. Custom jobs can
be loaded from a YAML, JSON, HCL or TOML file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureStyling(o)
			cmd.SetContext(setupLogging(cmd.Context(), o))
		},
	}

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewRunCmd(o),
		commands.NewPresetsCmd(o),
		newVersionCmd(o),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging puts a zerolog logger and a console logger into ctx. Every
// invocation is tagged with a fresh run id.
func setupLogging(ctx context.Context, o *opts.RootOpts) context.Context {
	level := zerolog.InfoLevel
	if o.Debug {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        o.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(o.Stderr),
	}).Level(level).With().Timestamp().Str("run_id", uuid.NewString()).Logger()

	ctx = logger.WithContext(ctx)
	return log.NewContext(ctx, log.New(o.Stdout, logger))
}

// configureStyling turns colors and table styling off when stdout is not a
// terminal so the output stays plain text
func configureStyling(o *opts.RootOpts) {
	if isTerminal(o.Stdout) {
		return
	}
	color.NoColor = true
	pterm.DisableStyling()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
