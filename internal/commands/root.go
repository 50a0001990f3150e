// Package commands implements all CLI commands for mkcommit.
// It uses the Cobra library which is the standard for CLI applications in Go.
package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wlame/mkcommit/internal/config"
	"github.com/wlame/mkcommit/internal/dialect"
	"github.com/wlame/mkcommit/pkg/version"
	"gopkg.in/yaml.v3"
)

var (
	// cfgFile holds the path to the configuration file
	// This is set by the --config flag
	cfgFile string

	// verbose enables verbose output
	// This is set by the --verbose flag
	verbose bool

	// dialectName overrides the dialect from the config file
	// This is set by the --dialect flag
	dialectName string

	// log is the diagnostic logger; user-facing output goes through the Print* helpers
	log = logrus.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mkcommit",
	Short: "Validate and build structured commit messages",
	Long: `mkcommit checks commit messages against a commit dialect and
helps to build messages that conform to it.

Built-in dialects:
  - semantic:     feat, fix(scope)!: subject
  - conventional: feat(scope)!: subject
  - technica:     [AbCd/PROJECT-1234] feat: subject

Example usage:
  # Validate a message
  mkcommit lint "feat: add login form"

  # Use as a commit-msg hook
  mkcommit lint --file .git/COMMIT_EDITMSG

  # Build a message and commit the staged changes
  mkcommit new -t feat -s auth -m "add login form" --commit

  # Add a trailer to a message body
  mkcommit trailer add Reviewed-by "Jane Doe" --file body.txt`,

	// SilenceUsage prevents showing usage on errors
	SilenceUsage: true,

	// SilenceErrors prevents Cobra from printing errors
	// We'll handle error printing ourselves for better control
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

// Execute is the main entry point for the CLI
// It's called from main.go and executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./.mkcommit.toml)")

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")

	rootCmd.PersistentFlags().StringVarP(&dialectName, "dialect", "d", "",
		"commit dialect (default: from config, semantic)")

	rootCmd.AddCommand(versionCmd)
}

// setupLogging configures the diagnostic logger for the current run
func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version, commit hash, and build time of mkcommit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		}

		out, err := yaml.Marshal(version.Get())
		if err != nil {
			return fmt.Errorf("failed to format version: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

// loadConfig loads and validates the configuration
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration is invalid: %w", err)
	}
	log.WithFields(logrus.Fields{
		"dialect": cfg.Dialect,
		"custom":  len(cfg.Dialects),
	}).Debug("configuration loaded")
	return cfg, nil
}

// loadDialect loads the configuration and returns the selected dialect
// The --dialect flag wins over the configured one
func loadDialect() (*config.Config, dialect.Dialect, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	registry, err := dialect.Load(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build dialects: %w", err)
	}

	name := cfg.Dialect
	if dialectName != "" {
		name = dialectName
	}

	d, err := registry.Lookup(name)
	if err != nil {
		return nil, nil, err
	}
	log.WithField("dialect", d.Name()).Debug("dialect selected")
	return cfg, d, nil
}

// GetConfigFile returns the path to the configuration file
func GetConfigFile() string {
	return cfgFile
}

// PrintError prints an error message to stderr
// This is a helper function for consistent error formatting
func PrintError(err error) {
	fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
}

// PrintWarning prints a warning message to stderr
func PrintWarning(msg string) {
	fmt.Fprintf(os.Stderr, "[WARN] %s\n", msg)
}

// PrintInfo prints an info message to stderr
// Info goes to stderr so stdout only carries the produced message
func PrintInfo(msg string) {
	fmt.Fprintf(os.Stderr, "[INFO] %s\n", msg)
}

// PrintSuccess prints a success message to stderr
func PrintSuccess(msg string) {
	fmt.Fprintf(os.Stderr, "[SUCCESS] %s\n", msg)
}
