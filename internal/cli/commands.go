package cli

import (
	"fmt"
	"os"

	"github.com/PizzaHomicide/toyunda/internal/config"
	"github.com/PizzaHomicide/toyunda/internal/input"
	"github.com/PizzaHomicide/toyunda/internal/log"
	"github.com/PizzaHomicide/toyunda/internal/ui/keyhelp"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	envNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	envSetStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#43BF6D"))
	envUnsetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	envDescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func (a *app) keysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show the keybindings available during playback",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), keyhelp.Render(input.Bindings))
		},
	}
}

func (a *app) configCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the configuration file",
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the path of the configuration file",
			Args:  usageArgs(cobra.NoArgs),
			RunE: func(cmd *cobra.Command, _ []string) error {
				path, err := config.Path()
				if err != nil {
					return fmt.Errorf("unable to determine config file path: %w", err)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "env",
			Short: "List the supported environment variable overrides",
			Args:  usageArgs(cobra.NoArgs),
			Run: func(cmd *cobra.Command, _ []string) {
				for _, env := range config.EnvVars() {
					value, present := os.LookupEnv(env.Name)
					rendered := envUnsetStyle.Render("unset")
					if present {
						rendered = envSetStyle.Render(value)
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s=%s  %s\n",
						envNameStyle.Render(env.Name), rendered, envDescStyle.Render(env.Description))
				}
			},
		},
		&cobra.Command{
			Use:   "set-overlay <text>",
			Short: "Persist the text drawn over the video.  An empty text disables the overlay.",
			Args:  usageArgs(cobra.ExactArgs(1)),
			RunE: func(cmd *cobra.Command, args []string) error {
				text := args[0]
				err := config.UpdateConfig(func(cfg *config.Config) {
					cfg.Overlay.Text = text
				})
				if err != nil {
					return fmt.Errorf("failed to save overlay text: %w", err)
				}
				a.cfg.Overlay.Text = text
				log.Info("Overlay text saved", "text", text)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Overlay text saved")
				return nil
			},
		},
	)

	return configCmd
}
