// Package model holds the Bubble Tea models behind interactive commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/hyprwarp/internal/application/port"
	"github.com/bnema/hyprwarp/internal/cli/styles"
	"github.com/bnema/hyprwarp/internal/domain/entity"
	"github.com/bnema/hyprwarp/internal/domain/layout"
	"github.com/bnema/hyprwarp/internal/domain/warp"
)

const (
	minWatchInterval = 10 * time.Millisecond
	maxWatchInterval = 2 * time.Second
)

// WatchModel samples the cursor and shows where it is in the layout, which
// borders it touches, and where a warp would land. It never moves the cursor.
type WatchModel struct {
	ctx      context.Context
	theme    *styles.Theme
	keys     styles.WatchKeyMap
	help     help.Model
	reader   port.CursorReader
	registry *layout.Registry
	planner  *warp.Planner
	outputs  table.Model
	interval time.Duration

	paused   bool
	sampled  bool
	point    entity.Point
	output   entity.Output
	inside   bool
	dir      entity.Direction
	plan     *warp.Plan
	planErr  error
	lastErr  error
	samples  int
	failures int
}

// NewWatchModel creates a new live cursor model.
func NewWatchModel(
	ctx context.Context,
	theme *styles.Theme,
	reader port.CursorReader,
	registry *layout.Registry,
	interval time.Duration,
) WatchModel {
	rows := styles.OutputRows(registry.Outputs())
	outputs := styles.NewStyledTable(theme, styles.OutputTableColumns(), rows, 40, len(rows)+2)

	return WatchModel{
		ctx:      ctx,
		outputs:  outputs,
		theme:    theme,
		keys:     styles.DefaultWatchKeyMap(),
		help:     styles.NewStyledHelp(theme),
		reader:   reader,
		registry: registry,
		planner:  warp.NewPlanner(registry),
		interval: clampInterval(interval),
	}
}

// watchTickMsg asks for the next sample.
type watchTickMsg struct{}

// cursorSampledMsg carries one cursor read.
type cursorSampledMsg struct {
	point entity.Point
	err   error
}

// Init implements tea.Model.
func (m WatchModel) Init() tea.Cmd {
	return m.sample
}

func (m WatchModel) sample() tea.Msg {
	p, err := m.reader.CursorPosition(m.ctx)
	return cursorSampledMsg{point: p, err: err}
}

func (m WatchModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return watchTickMsg{} })
}

// Update implements tea.Model.
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Faster):
			m.interval = clampInterval(m.interval / 2)
		case key.Matches(msg, m.keys.Slower):
			m.interval = clampInterval(m.interval * 2)
		case key.Matches(msg, m.keys.Reset):
			m.samples = 0
			m.failures = 0
			m.lastErr = nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case watchTickMsg:
		if m.paused {
			return m, m.scheduleTick()
		}
		return m, m.sample

	case cursorSampledMsg:
		m.observe(msg.point, msg.err)
		return m, m.scheduleTick()
	}

	return m, nil
}

// observe records a sample and recomputes the layout view of it.
func (m *WatchModel) observe(p entity.Point, err error) {
	if err != nil {
		m.failures++
		m.lastErr = err
		return
	}

	m.samples++
	m.sampled = true
	m.point = p
	m.plan = nil
	m.planErr = nil
	m.dir = entity.Direction{}

	m.output, m.inside = m.registry.FindContaining(p)
	if !m.inside {
		return
	}
	m.selectOutput(m.output.Name)

	m.dir = m.output.BorderDirections(p)
	if m.dir.IsEmpty() {
		return
	}

	plan, err := m.planner.Plan(m.output, p, m.dir)
	if err != nil {
		m.planErr = err
		return
	}
	m.plan = &plan
}

// selectOutput highlights the named output in the layout table.
func (m *WatchModel) selectOutput(name string) {
	for i, row := range m.outputs.Rows() {
		if row[0] == name {
			m.outputs.SetCursor(i)
			return
		}
	}
}

// View implements tea.Model.
func (m WatchModel) View() string {
	t := m.theme
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)

	state := t.AccentBadge("live")
	if m.paused {
		state = t.MutedBadge("paused")
	}
	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		iconStyle.Render(styles.IconCursor), " ",
		t.Title.Render("Cursor"), " ",
		state, " ",
		t.MutedBadge(fmt.Sprintf("%s %s", styles.IconClock, m.interval)),
	)

	body := m.renderBody()

	counters := t.Subtle.Render(fmt.Sprintf("%d samples, %d failed reads", m.samples, m.failures))
	if m.lastErr != nil {
		counters += "\n" + t.ErrorStyle.Render(styles.IconX+" "+m.lastErr.Error())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, t.Box.Render(body), " ", t.Box.Render(m.outputs.View())),
		counters,
		"",
		m.help.View(m.keys),
	)
}

func (m WatchModel) renderBody() string {
	t := m.theme
	if !m.sampled {
		return t.Subtle.Render("Waiting for the first sample...")
	}

	row := func(k, v string) string {
		return t.Subtle.Render(fmt.Sprintf("%-9s", k)) + " " + v
	}

	lines := []string{row("Position", t.Highlight.Render(m.point.String()))}
	if !m.inside {
		lines = append(lines, row("Output", t.WarningStyle.Render("outside every known output")))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, row("Output", t.Normal.Render(m.output.String())))

	badges := make([]string, 0, len(entity.AllSides))
	for _, side := range entity.AllSides {
		badges = append(badges, t.SideBadge(string(side), m.dir.Has(side)))
	}
	lines = append(lines, row("Borders", strings.Join(badges, " ")))

	switch {
	case m.plan != nil:
		lines = append(lines, row("Warp", fmt.Sprintf("%s %s %s",
			t.Normal.Render(m.plan.Neighbor.Name),
			t.Subtle.Render(styles.IconArrow),
			t.Highlight.Render(m.plan.Target.String()),
		)))
	case errors.Is(m.planErr, entity.ErrNoAdjacentOutput):
		lines = append(lines, row("Warp", t.Subtle.Render("no output "+m.dir.String())))
	case m.planErr != nil:
		lines = append(lines, row("Warp", t.ErrorStyle.Render(m.planErr.Error())))
	}

	return strings.Join(lines, "\n")
}

func clampInterval(d time.Duration) time.Duration {
	return min(max(d, minWatchInterval), maxWatchInterval)
}
