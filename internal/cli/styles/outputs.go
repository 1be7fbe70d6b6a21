package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hyprwarp/internal/domain/entity"
)

// OutputsRenderer renders the output layout snapshot.
type OutputsRenderer struct {
	theme *Theme
}

// NewOutputsRenderer creates a new outputs renderer with the given theme.
func NewOutputsRenderer(theme *Theme) *OutputsRenderer {
	return &OutputsRenderer{theme: theme}
}

// SkippedRow is an output left out of the layout.
type SkippedRow struct {
	Name   string
	Reason string
}

// OutputsReport is what the outputs command shows.
type OutputsReport struct {
	Outputs  []entity.Output
	Skipped  []SkippedRow
	Overlaps [][2]string
}

// Render renders the layout as a table followed by skipped outputs and overlaps.
func (r *OutputsRenderer) Render(report OutputsReport) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	title := fmt.Sprintf("%s %s %s",
		iconStyle.Render(IconDesktop),
		r.theme.Title.Render("Outputs"),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d active", len(report.Outputs))),
	)

	sections := []string{title, "", r.renderTable(report.Outputs)}

	if len(report.Skipped) > 0 {
		lines := make([]string, 0, len(report.Skipped))
		for _, s := range report.Skipped {
			lines = append(lines, fmt.Sprintf("%s %s %s",
				r.theme.Subtle.Render(IconInfo),
				r.theme.Normal.Render(s.Name),
				r.theme.Subtle.Render(s.Reason),
			))
		}
		sections = append(sections, "", r.theme.Subtitle.Render("Skipped"), strings.Join(lines, "\n"))
	}

	if len(report.Overlaps) > 0 {
		lines := make([]string, 0, len(report.Overlaps))
		for _, o := range report.Overlaps {
			lines = append(lines, fmt.Sprintf("%s %s %s %s",
				r.theme.WarningStyle.Render(IconWarning),
				r.theme.Normal.Render(o[0]),
				r.theme.Subtle.Render("overlaps"),
				r.theme.Normal.Render(o[1]),
			))
		}
		sections = append(sections, "",
			r.theme.WarningStyle.Render("Overlapping outputs"),
			strings.Join(lines, "\n"),
			r.theme.Subtle.Render("Warps between overlapping outputs pick the first registered match."),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (r *OutputsRenderer) renderTable(outputs []entity.Output) string {
	headers := []string{"#", "Name", "Position", "Size", "Right", "Bottom"}
	rows := make([][]string, 0, len(outputs))
	for i, o := range outputs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			o.Name,
			fmt.Sprintf("%d,%d", o.X, o.Y),
			fmt.Sprintf("%dx%d", o.Width, o.Height),
			fmt.Sprintf("%d", o.Right()),
			fmt.Sprintf("%d", o.Bottom()),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	render := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = style.Width(widths[i]).Render(cell)
		}
		return strings.Join(parts, "  ")
	}

	headerStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)
	lines := []string{render(headers, headerStyle)}
	for _, row := range rows {
		lines = append(lines, render(row, r.theme.Normal))
	}

	return r.theme.Box.Render(strings.Join(lines, "\n"))
}
