package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wlame/mkcommit/internal/config"
	"github.com/wlame/mkcommit/internal/dialect"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command and its subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Display and validate configuration settings.`,
}

// configShowCmd shows the current configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Long:  `Load and display the current configuration from file and environment variables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(GetConfigFile())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		PrintInfo("Configuration loaded successfully")

		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to format config: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// configValidateCmd validates the configuration
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration",
	Long:  `Load and validate the configuration file, then build every dialect it defines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		// Building the registry catches keyword problems (duplicates, blanks)
		registry, err := dialect.Load(cfg)
		if err != nil {
			return fmt.Errorf("configuration is invalid: %w", err)
		}

		PrintSuccess("Configuration is valid")
		PrintInfo(fmt.Sprintf("Default dialect: %s", cfg.Dialect))
		PrintInfo(fmt.Sprintf("Available dialects: %d", len(registry.List())))

		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)

	rootCmd.AddCommand(configCmd)
}
