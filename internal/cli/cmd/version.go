package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprwarp/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"about"},
	Short:   "Show version and build information",
	Long:    `Display version, build info and repository URL.`,
	RunE:    runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print the version number only")
}

func runVersion(_ *cobra.Command, _ []string) error {
	if versionShort {
		fmt.Println(buildInfo.Version)
		return nil
	}

	// Runs without loading the config, so the palette is the default one.
	renderer := styles.NewAboutRenderer(styles.NewTheme(nil))
	fmt.Println(renderer.Render(buildInfo))
	return nil
}
