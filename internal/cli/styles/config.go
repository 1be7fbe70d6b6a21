package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders the output of the config subcommands.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a config renderer.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

func (r *ConfigRenderer) line(icon string, color lipgloss.Color, text string) string {
	return "  " + lipgloss.NewStyle().Foreground(color).Render(icon) + " " + text
}

// RenderPath shows where the config file lives and whether defaults apply.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	t := r.theme
	lines := []string{r.line(IconConfig, t.Accent, "Config "+t.Subtle.Render(path))}
	if !exists {
		lines = append(lines, "  "+t.Subtle.Render("No file yet, defaults apply. Run 'hyprwarp config init' to create it."))
	}
	return "\n" + strings.Join(lines, "\n") + "\n"
}

// RenderWritten confirms the files written by config init.
func (r *ConfigRenderer) RenderWritten(paths ...string) string {
	lines := make([]string, 0, len(paths))
	for _, p := range paths {
		lines = append(lines, r.line(IconCheck, r.theme.Success, "Wrote "+r.theme.Subtle.Render(p)))
	}
	return "\n" + strings.Join(lines, "\n") + "\n"
}

// RenderError shows a config failure.
func (r *ConfigRenderer) RenderError(err error) string {
	return "\n" + r.line(IconX, r.theme.Error, "Config error: "+err.Error()) + "\n"
}
