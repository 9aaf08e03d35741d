// Package cli implements the toyunda-player command line
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/PizzaHomicide/toyunda/internal/config"
	"github.com/PizzaHomicide/toyunda/internal/log"
	"github.com/PizzaHomicide/toyunda/internal/player"
	"github.com/PizzaHomicide/toyunda/internal/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// PlayFunc plays a file with the loaded configuration
type PlayFunc func(ctx context.Context, cfg *config.Config, opts player.Options) error

type app struct {
	cfg    *config.Config
	play   PlayFunc
	logger *log.Logger
}

// Execute runs the command line with args and returns the process exit code.  Usage errors and failed
// playback exit with 1, --help and --version with 0.
func Execute(ctx context.Context, cfg *config.Config, play PlayFunc, args []string, stdout, stderr io.Writer) int {
	a := &app{cfg: cfg, play: play}
	defer a.closeLogger()

	root := a.rootCommand()
	// cobra falls back to os.Args when given nil
	root.SetArgs(append([]string{}, args...))
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		log.Error("Command failed", "error", err)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)

		var usageErr *usageError
		if errors.As(err, &usageErr) {
			_, _ = fmt.Fprint(stderr, usageErr.cmd.UsageString())
		}
		return 1
	}
	return 0
}

// usageError marks errors caused by bad flags or arguments, which are followed by the usage text
type usageError struct {
	cmd *cobra.Command
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &usageError{cmd: cmd, err: err}
		}
		return nil
	}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "toyunda-player [flags] <file>",
		Short: "Play karaoke videos in an SDL window",
		Long: `Play a video file through an embedded libmpv in an SDL window.

Run 'toyunda-player keys' for the list of keybindings.  A file named like a
subcommand must be given with a path, e.g. './keys'.`,
		Version:           version.GetVersionInfo(),
		Args:              usageArgs(cobra.ExactArgs(1)),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setupLogging,
		RunE:              a.runPlay,
	}
	root.SetVersionTemplate("{{.Version}}\n")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{cmd: cmd, err: err}
	})

	root.Flags().BoolP("invert", "i", false, "Flip the video vertically")
	root.Flags().BoolP("fullscreen", "f", false, "Start in fullscreen")
	root.PersistentFlags().String("log-level", "", "Override the configured log level (trace, debug, info, warn, error)")

	root.AddCommand(a.keysCommand(), a.configCommand())
	return root
}

func (a *app) runPlay(cmd *cobra.Command, args []string) error {
	opts := player.Options{
		File:       args[0],
		Invert:     lo.Must(cmd.Flags().GetBool("invert")),
		Fullscreen: lo.Must(cmd.Flags().GetBool("fullscreen")),
	}
	return a.play(cmd.Context(), a.cfg, opts)
}

func (a *app) setupLogging(cmd *cobra.Command, _ []string) error {
	if level := lo.Must(cmd.Flags().GetString("log-level")); level != "" {
		a.cfg.Logging.Level = level
	}

	logger, err := log.New(log.Config{
		Level:    a.cfg.Logging.Level,
		FilePath: a.cfg.Logging.FilePath,
		Format:   a.cfg.Logging.Format,
	})
	if err != nil {
		// Probably should let the player continue without logging, but for now this is acceptable.
		return fmt.Errorf("failed to initialise logger: %w", err)
	}
	a.logger = logger
	log.SetDefaultLogger(logger)

	log.Info("Starting up Toyunda Player", "version", version.GetVersion(), "build_time", version.GetBuildTime(), "command", cmd.Name())
	return nil
}

func (a *app) closeLogger() {
	if a.logger == nil {
		return
	}
	log.Info("Toyunda Player shutting down.  Goodbye!")
	log.SetDefaultLogger(nil)
	a.logger.Close()
}
