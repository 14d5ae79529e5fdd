package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/todolabs/rocketd/internal/config"
	"github.com/todolabs/rocketd/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or manage configuration",
	Long: `View and manage rocketd configuration.

Examples:
  rocketd config show        # Display the active configuration
  rocketd config validate    # Validate the configuration file
  rocketd config path        # Show the config file path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadOrDefault()

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to format config: %w", err)
		}

		fmt.Print(ui.Section("Active configuration", string(data)))

		if _, err := os.Stat(config.FileName); err == nil {
			fmt.Println("Source: " + config.FileName)
		} else {
			fmt.Println("Source: defaults (no " + config.FileName + " found)")
		}

		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Validating configuration...")
		fmt.Println()

		if _, err := os.Stat(config.FileName); err != nil {
			fmt.Printf("  %s: not found (defaults apply)\n", config.FileName)
			return nil
		}

		cfg, err := config.Load(config.FileName)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			fmt.Print(ui.ErrorBox("Invalid configuration", err.Error()))
			return fmt.Errorf("configuration validation failed")
		}

		fmt.Println("  " + ui.CheckMark(config.FileName))
		fmt.Println()
		fmt.Println("Configuration is valid!")
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	Run: func(cmd *cobra.Command, args []string) {
		cwd, _ := os.Getwd()
		fmt.Println(filepath.Join(cwd, config.FileName))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configPathCmd)
}
