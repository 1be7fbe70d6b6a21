package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hyprwarp/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// OutputTableColumns returns columns for the output layout table.
func OutputTableColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 14},
		{Title: "Position", Width: 11},
		{Title: "Size", Width: 11},
	}
}

// OutputRows converts outputs to table rows, in registration order.
func OutputRows(outputs []entity.Output) []table.Row {
	rows := make([]table.Row, len(outputs))
	for i, o := range outputs {
		rows[i] = table.Row{
			o.Name,
			fmt.Sprintf("%d,%d", o.X, o.Y),
			fmt.Sprintf("%dx%d", o.Width, o.Height),
		}
	}
	return rows
}
