// Package cmd provides Cobra CLI commands for hyprwarp.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprwarp/internal/cli"
	"github.com/bnema/hyprwarp/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "hyprwarp",
		Short: "Warp the cursor across gaps between Hyprland outputs",
		Long: `hyprwarp moves the pointer onto the adjacent output when it reaches a
screen border that has no directly touching neighbor.

Outputs of different sizes or offset positions leave dead zones where the
pointer gets stuck. hyprwarp polls the cursor, detects when it sits on a
border, finds the closest output in that direction and places the pointer
on its facing edge.

Run without a subcommand to start the warp loop.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version", "path", "init", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		RunE: runWarp,
	}
)

func init() {
	// Finalizers run even when RunE fails, unlike PersistentPostRun.
	cobra.OnFinalize(closeApp)
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/hyprwarp/config.toml)")
	addRunFlags(rootCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// closeApp releases the app built by PersistentPreRunE, such as the portal
// session and the log file.
func closeApp() {
	if app == nil {
		return
	}
	if err := app.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: cleanup failed:", err)
	}
	app = nil
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
