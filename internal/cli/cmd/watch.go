package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/hyprwarp/internal/application/usecase"
	"github.com/bnema/hyprwarp/internal/cli/model"
	"github.com/bnema/hyprwarp/internal/logging"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show the cursor position and border state live",
	Long: `Open a live view of the cursor: its position, the output containing it,
the borders it touches and where a warp would land.

The view only reads the cursor. Run 'hyprwarp run' in another terminal to
see warps happen.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	compositor, err := app.Compositor()
	if err != nil {
		return err
	}

	layoutOut, err := usecase.NewLoadLayoutUseCase(compositor).Execute(app.Ctx(), usecase.LoadLayoutInput{
		Exclude:       app.Config.Warp.ExcludeOutputs,
		LooseVertical: app.Config.Warp.LooseVertical,
	})
	if err != nil {
		return err
	}

	// Log lines would tear the alternate screen.
	ctx := logging.WithContext(app.Ctx(), zerolog.Nop())
	m := model.NewWatchModel(ctx, app.Theme, compositor, layoutOut.Registry, app.Config.Poll.Interval())

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
