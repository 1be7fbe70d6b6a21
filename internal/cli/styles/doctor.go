package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	OverallOK bool
	Setup     DoctorSetup
	Checks    []DoctorCheck
}

// DoctorSetup is the configuration the checks ran against.
type DoctorSetup struct {
	ConfigFile string
	Socket     string
	Mover      string
	Interval   time.Duration
}

type DoctorCheck struct {
	Name     string
	OK       bool
	Error    string
	Duration time.Duration
	// Required marks the backends the configured loop needs.
	Required bool
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	header := r.renderHeader(report.OverallOK)
	sections := []string{r.renderSetup(report.Setup)}
	if len(report.Checks) > 0 {
		sections = append(sections, r.renderChecks(report.Checks))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(sections, "\n\n"))
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderSetup(s DoctorSetup) string {
	configFile := s.ConfigFile
	if configFile == "" {
		configFile = "(defaults, no file)"
	}
	socket := s.Socket
	if socket == "" {
		socket = "(not found)"
	}

	row := func(key, val string) string {
		return fmt.Sprintf("%s %s", r.theme.Subtle.Render(fmt.Sprintf("%-9s", key)), r.theme.Normal.Render(val))
	}
	lines := []string{
		row("Config", configFile),
		row("Socket", socket),
		row("Mover", s.Mover),
		row("Interval", s.Interval.String()),
	}

	body := strings.Join(lines, "\n")
	return r.theme.Box.Render(r.theme.BoxHeader.Render(fmt.Sprintf("%s Setup", r.theme.Highlight.Render(IconConfig))) + "\n" + body)
}

func (r *DoctorRenderer) renderChecks(checks []DoctorCheck) string {
	lines := make([]string, 0, len(checks))
	for _, c := range checks {
		lines = append(lines, r.renderCheck(c))
	}
	body := strings.Join(lines, "\n")
	return r.theme.Box.Render(r.theme.BoxHeader.Render(fmt.Sprintf("%s Backends", r.theme.Highlight.Render(IconCursor))) + "\n" + body)
}

func (r *DoctorRenderer) renderCheck(c DoctorCheck) string {
	icon := IconCheck
	statusStyle := r.theme.SuccessStyle
	status := "OK"
	summary := fmt.Sprintf("answered in %s", c.Duration.Round(time.Millisecond))

	if !c.OK {
		summary = c.Error
		if c.Required {
			icon = IconX
			statusStyle = r.theme.ErrorStyle
			status = "Unavailable"
		} else {
			icon = IconWarning
			statusStyle = r.theme.WarningStyle
			status = "Unavailable"
		}
	}

	name := r.theme.Normal.Render(c.Name)
	if c.Required {
		name += " " + r.theme.Subtle.Render("(in use)")
	}
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(status))
	info := r.theme.Subtle.Render(summary)

	return fmt.Sprintf("%s %s %s\n  %s", statusStyle.Render(icon), name, badge, info)
}
