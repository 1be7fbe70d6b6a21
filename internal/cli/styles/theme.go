// Package styles renders hyprwarp's terminal output with lipgloss.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hyprwarp/internal/infrastructure/config"
)

// Status colors are fixed; only the base palette is configurable.
const (
	errorColor   = lipgloss.Color("#ef4444")
	warningColor = lipgloss.Color("#f59e0b")
)

// Theme is the palette from appearance.palette plus the styles built on it.
type Theme struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
	Warning        lipgloss.Color
	Success        lipgloss.Color

	// Text
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style // coordinates and landing points
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Side and status pills
	Badge      lipgloss.Style
	BadgeMuted lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Panels for the layout, setup and backend sections
	Box       lipgloss.Style
	BoxHeader lipgloss.Style
}

// NewTheme builds the theme for cfg. A nil config or an empty palette uses
// config.DefaultPalette.
func NewTheme(cfg *config.Config) *Theme {
	if cfg == nil || cfg.Appearance.Palette.Background == "" {
		return NewThemeFromPalette(config.DefaultPalette())
	}
	return NewThemeFromPalette(cfg.Appearance.Palette)
}

// NewThemeFromPalette builds the theme for p. Success reuses the accent.
func NewThemeFromPalette(p config.ColorPalette) *Theme {
	t := &Theme{
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),
		Error:          errorColor,
		Warning:        warningColor,
		Success:        lipgloss.Color(p.Accent),
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	t.Title = fg(t.Text).Bold(true)
	t.Subtitle = fg(t.Muted).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(t.Error)
	t.WarningStyle = fg(t.Warning)
	t.SuccessStyle = fg(t.Success)

	t.Badge = fg(t.Background).Background(t.Accent).Padding(0, 1)
	t.BadgeMuted = fg(t.Text).Background(t.SurfaceVariant).Padding(0, 1)

	t.HelpKey = fg(t.Accent)
	t.HelpDesc = fg(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)
	t.BoxHeader = fg(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border)

	return t
}
