package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprwarp/internal/application/usecase"
	"github.com/bnema/hyprwarp/internal/cli/styles"
)

var outputsCmd = &cobra.Command{
	Use:     "outputs",
	Aliases: []string{"layout"},
	Short:   "Show the output layout the warp loop would use",
	Long: `Read the outputs from Hyprland and print them in registration order,
which is the order used to break ties between equally close neighbors.

Outputs excluded by warp.exclude_outputs or rejected as invalid are listed
separately, as are overlapping outputs.`,
	RunE: runOutputs,
}

func init() {
	rootCmd.AddCommand(outputsCmd)
}

func runOutputs(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	compositor, err := app.Compositor()
	if err != nil {
		return err
	}

	out, err := usecase.NewLoadLayoutUseCase(compositor).Execute(app.Ctx(), usecase.LoadLayoutInput{
		Exclude:       app.Config.Warp.ExcludeOutputs,
		LooseVertical: app.Config.Warp.LooseVertical,
	})
	if err != nil {
		return err
	}

	report := styles.OutputsReport{Outputs: out.Registry.Outputs()}
	for _, s := range out.Skipped {
		report.Skipped = append(report.Skipped, styles.SkippedRow{Name: s.Output.Name, Reason: s.Reason})
	}
	for _, o := range out.Overlaps {
		report.Overlaps = append(report.Overlaps, [2]string{o.First.Name, o.Second.Name})
	}

	fmt.Println(styles.NewOutputsRenderer(app.Theme).Render(report))
	return nil
}
