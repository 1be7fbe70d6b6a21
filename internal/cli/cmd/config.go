package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprwarp/internal/cli/styles"
	"github.com/bnema/hyprwarp/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, create and describe the hyprwarp configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file and its JSON schema",
	Long: `Write a config file holding every setting at its default value, plus
config.schema.json next to it for editor completion.

An existing config file is left untouched unless --force is given.`,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

// resolveConfigFile returns --config or the XDG default.
func resolveConfigFile() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.GetConfigFile()
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	path, err := resolveConfigFile()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	renderer := styles.NewConfigRenderer(styles.NewTheme(nil))
	fmt.Println(renderer.RenderPath(path, statErr == nil))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme(nil))

	path, err := resolveConfigFile()
	if err != nil {
		return err
	}

	if err := config.WriteConfigOrdered(config.DefaultConfig(), path, configForce); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			fmt.Println(renderer.RenderError(fmt.Errorf("%s already exists, use --force to overwrite", path)))
			return err
		}
		return err
	}

	schemaPath := config.SchemaFileBeside(path)
	if err := config.WriteSchemaFile(schemaPath); err != nil {
		return err
	}

	fmt.Println(renderer.RenderWritten(path, schemaPath))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
