// Package keyhelp renders the player's keybindings for the terminal
package keyhelp

import (
	"strings"

	"github.com/PizzaHomicide/toyunda/internal/input"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	// keyStyle is used to highlight keyboard shortcuts
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DEDEDE"))
)

// Render returns the keybinding table, one binding per line under a title
func Render(bindings []input.Binding) string {
	keyWidth := lo.Max(lo.Map(bindings, func(b input.Binding, _ int) int {
		return lipgloss.Width(b.Key.String())
	}))

	lines := lo.Map(bindings, func(b input.Binding, _ int) string {
		key := keyStyle.Width(keyWidth + 2).Render(b.Key.String())
		return lipgloss.JoinHorizontal(lipgloss.Top, key, helpStyle.Render(b.Help))
	})

	return titleStyle.Render("Keybindings") + "\n\n" + strings.Join(lines, "\n") + "\n"
}
