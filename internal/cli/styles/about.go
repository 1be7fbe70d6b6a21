package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hyprwarp/internal/domain/build"
)

// AboutRenderer renders the version screen: a logo beside the build info.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates an about renderer.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// aboutLogo is two screens with a pointer crossing the gap.
const aboutLogo = `┌────┐ ┌────┐
│   ─┼─┼▶   │
└────┘ └────┘`

// Render lays out info next to the logo.
func (r *AboutRenderer) Render(info build.Info) string {
	t := r.theme
	logo := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render(aboutLogo)

	icon := lipgloss.NewStyle().Foreground(t.Accent)
	rows := []struct{ icon, key, value string }{
		{IconVersion, "Version", info.Version},
		{IconGitBranch, "Commit", info.Commit},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
	}
	lines := make([]string, 0, len(rows)+2)
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			icon.Render(row.icon), t.Subtle.Render(row.key), t.Highlight.Render(orUnknown(row.value))))
	}
	lines = append(lines, "", icon.Render(IconGithub)+" "+t.Subtle.Render(build.RepoURL()))

	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", strings.Join(lines, "\n"))
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
