// Package config handles loading and managing configuration for mkcommit.
// It uses Viper to support multiple configuration sources: files, environment variables, and CLI flags.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"github.com/wlame/mkcommit/internal/keyword"
)

// Config is the main configuration structure for mkcommit
// It maps directly to the TOML configuration file structure
type Config struct {
	// Dialect is the name of the dialect used when no --dialect flag is given
	// Default: "semantic"
	Dialect string `mapstructure:"dialect" yaml:"dialect"`

	// MaxSubjectLength overrides the subject limit of every dialect
	// 0 keeps the dialect defaults (55 for semantic/technica, none for conventional)
	MaxSubjectLength int `mapstructure:"max_subject_length" yaml:"max_subject_length"`

	// Technica configures the "[initials/ticket]" preamble
	Technica TechnicaConfig `mapstructure:"technica" yaml:"technica"`

	// Git contains the settings used when reading history or committing
	Git GitConfig `mapstructure:"git" yaml:"git"`

	// Dialects is a list of additional, user-defined dialects
	Dialects []DialectConfig `mapstructure:"dialects" yaml:"dialects,omitempty"`
}

// TechnicaConfig holds the preamble settings of the technica dialect
type TechnicaConfig struct {
	// Order is "initials-first" ([AbCd/PROJ-1]) or "ticket-first" ([PROJ-1/AbCd])
	Order string `mapstructure:"order" yaml:"order"`

	// FirstNameChars is how many letters of the first name the initials use
	FirstNameChars int `mapstructure:"first_name_chars" yaml:"first_name_chars"`

	// LastNameChars is how many letters of the last name the initials use
	LastNameChars int `mapstructure:"last_name_chars" yaml:"last_name_chars"`

	// Projects restricts tickets to these project keys (e.g. ["PROJECT", "OPS"])
	// Empty accepts any "WORD-1234" ticket
	Projects []string `mapstructure:"projects" yaml:"projects,omitempty"`
}

// GitConfig holds Git repository configuration
type GitConfig struct {
	// Path is the repository location. Parent directories are searched for .git
	// Default: Current directory
	Path string `mapstructure:"path" yaml:"path"`

	// AuthorName is the name to use in Git commits
	// Falls back to the repository's user.name when empty
	AuthorName string `mapstructure:"author_name" yaml:"author_name"`

	// AuthorEmail is the email to use in Git commits
	// Falls back to the repository's user.email when empty
	AuthorEmail string `mapstructure:"author_email" yaml:"author_email"`
}

// DialectConfig describes a user-defined dialect
type DialectConfig struct {
	// Name is the dialect name used with --dialect
	Name string `mapstructure:"name" yaml:"name"`

	// Extends names a dialect whose keywords come first, followed by Keywords
	Extends string `mapstructure:"extends" yaml:"extends,omitempty"`

	// Keywords are the type tokens of the dialect
	Keywords []keyword.Keyword `mapstructure:"keywords" yaml:"keywords"`

	AllowScope            bool `mapstructure:"allow_scope" yaml:"allow_scope"`
	AllowBreaking         bool `mapstructure:"allow_breaking" yaml:"allow_breaking"`
	AllowMultipleKeywords bool `mapstructure:"allow_multiple_keywords" yaml:"allow_multiple_keywords"`
	ExemptMergeCommits    bool `mapstructure:"exempt_merge_commits" yaml:"exempt_merge_commits"`

	// Preamble requires the technica "[initials/ticket]" prefix
	Preamble bool `mapstructure:"preamble" yaml:"preamble"`

	// MaxSubjectLength limits the subject length, 0 disables the check
	MaxSubjectLength int `mapstructure:"max_subject_length" yaml:"max_subject_length"`
}

// Load reads the configuration from a file and environment variables
// It follows this precedence order (highest to lowest):
//  1. CLI flags (handled by caller)
//  2. Environment variables
//  3. Configuration file
//  4. Default values
//
// Parameters:
//   - configPath: Path to the configuration file. If empty, will look for
//     ".mkcommit.toml" in the current directory and in ./.mkcommit
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		// User specified a config file path explicitly
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(".mkcommit")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath(".mkcommit")
	}

	// Example: MKCOMMIT_DIALECT=conventional
	v.SetEnvPrefix("MKCOMMIT")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found - this is only an error if user specified a path
			if configPath != "" {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
		} else if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// Default returns the configuration used when no file and no environment is present
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults are plain scalars, unmarshalling them cannot fail
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// setDefaults sets default values for configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("dialect", "semantic")
	v.SetDefault("max_subject_length", 0)

	// Technica defaults: [AbCd/PROJECT-1234]
	v.SetDefault("technica.order", "initials-first")
	v.SetDefault("technica.first_name_chars", 2)
	v.SetDefault("technica.last_name_chars", 2)

	v.SetDefault("git.path", ".")
}

// applyEnvOverrides fills the commit author from the variables git itself honors
func applyEnvOverrides(cfg *Config) {
	if cfg.Git.AuthorName == "" {
		if name := os.Getenv("GIT_AUTHOR_NAME"); name != "" {
			cfg.Git.AuthorName = name
		}
	}

	if cfg.Git.AuthorEmail == "" {
		if email := os.Getenv("GIT_AUTHOR_EMAIL"); email != "" {
			cfg.Git.AuthorEmail = email
		}
	}
}
