package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprwarp/internal/application/port"
	"github.com/bnema/hyprwarp/internal/application/usecase"
	"github.com/bnema/hyprwarp/internal/cli/styles"
	"github.com/bnema/hyprwarp/internal/infrastructure/config"
	"github.com/bnema/hyprwarp/internal/infrastructure/hyprland"
)

const doctorCheckTimeout = 3 * time.Second

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the compositor and cursor movers are reachable",
	Long: `Doctor checks every backend concurrently:
- Hyprland request socket (cursor reads, output layout, hyprctl mover)
- ydotool binary and its daemon socket
- XDG RemoteDesktop portal

Only the compositor and the configured mover are required; the other
movers are reported as alternatives.

Examples:
  hyprwarp doctor
  hyprwarp doctor --config ./config.toml`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config

	report := styles.DoctorReport{
		Setup: styles.DoctorSetup{
			ConfigFile: app.Manager.GetConfigFile(),
			Mover:      string(cfg.Backend.Mover),
			Interval:   cfg.Poll.Interval(),
		},
	}
	if _, err := os.Stat(report.Setup.ConfigFile); err != nil {
		report.Setup.ConfigFile = ""
	}

	var checkers []port.BackendChecker
	compositor, err := app.Compositor()
	switch {
	case err == nil:
		report.Setup.Socket = compositor.Path()
		checkers = app.Checkers(compositor)
	case errors.Is(err, hyprland.ErrNoInstance):
		checkers = app.Checkers(nil)
		report.Checks = append(report.Checks, styles.DoctorCheck{
			Name:     "hyprland",
			Error:    err.Error(),
			Required: true,
		})
	default:
		return err
	}

	out, err := usecase.NewCheckBackendsUseCase(checkers...).Execute(app.Ctx(), usecase.CheckBackendsInput{
		Timeout: doctorCheckTimeout,
	})
	if err != nil {
		return err
	}

	for _, s := range out.Statuses {
		check := styles.DoctorCheck{
			Name:     s.Name,
			OK:       s.OK,
			Duration: s.Duration,
			Required: requiredBackend(s.Name, cfg.Backend.Mover),
		}
		if s.Err != nil {
			check.Error = s.Err.Error()
		}
		report.Checks = append(report.Checks, check)
	}

	report.OverallOK = true
	for _, c := range report.Checks {
		if c.Required && !c.OK {
			report.OverallOK = false
		}
	}

	fmt.Println(styles.NewDoctorRenderer(app.Theme).Render(report))
	if !report.OverallOK {
		return fmt.Errorf("required backends unavailable")
	}
	return nil
}

// requiredBackend reports whether the warp loop needs the named backend.
// The hyprctl mover is the compositor itself.
func requiredBackend(name string, mover config.MoverKind) bool {
	switch name {
	case "hyprland":
		return true
	case "ydotool":
		return mover == config.MoverYdotool
	case "portal":
		return mover == config.MoverPortal
	default:
		return false
	}
}
