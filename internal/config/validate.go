package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// builtinDialects are always available, custom dialects may not reuse their names
var builtinDialects = []string{"semantic", "conventional", "technica"}

// validOrders lists the accepted technica.order values
var validOrders = []string{"initials-first", "ticket-first"}

// Validate checks if the configuration is valid
// Every problem found is reported, not only the first one
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.MaxSubjectLength < 0 {
		result = multierror.Append(result, fmt.Errorf("max_subject_length must not be negative"))
	}

	if err := c.Technica.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("technica config: %w", err))
	}

	known := append([]string{}, builtinDialects...)
	for i, d := range c.Dialects {
		if err := d.Validate(known); err != nil {
			result = multierror.Append(result, fmt.Errorf("dialects[%d]: %w", i, err))
		}
		known = append(known, strings.ToLower(d.Name))
	}

	if c.Dialect == "" {
		result = multierror.Append(result, fmt.Errorf("dialect is required"))
	} else if !contains(known, strings.ToLower(c.Dialect)) {
		result = multierror.Append(result, fmt.Errorf("unknown dialect: %s (must be one of: %s)",
			c.Dialect, strings.Join(known, ", ")))
	}

	return result.ErrorOrNil()
}

// Validate checks if the technica configuration is valid
func (t *TechnicaConfig) Validate() error {
	if t.Order != "" && !contains(validOrders, strings.ToLower(t.Order)) {
		return fmt.Errorf("invalid order: %s (must be one of: %s)",
			t.Order, strings.Join(validOrders, ", "))
	}
	if t.FirstNameChars < 1 {
		return fmt.Errorf("first_name_chars must be at least 1")
	}
	if t.LastNameChars < 1 {
		return fmt.Errorf("last_name_chars must be at least 1")
	}
	for _, p := range t.Projects {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("projects must not contain empty keys")
		}
	}
	return nil
}

// Validate checks if a DialectConfig is valid
// known holds the names of the dialects defined before this one
func (d *DialectConfig) Validate(known []string) error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}
	if contains(known, strings.ToLower(d.Name)) {
		return fmt.Errorf("dialect %s is already defined", d.Name)
	}
	if d.Extends != "" && !contains(known, strings.ToLower(d.Extends)) {
		return fmt.Errorf("dialect %s extends unknown dialect %s", d.Name, d.Extends)
	}
	if d.Extends == "" && len(d.Keywords) == 0 {
		return fmt.Errorf("dialect %s has no keywords", d.Name)
	}
	if d.MaxSubjectLength < 0 {
		return fmt.Errorf("dialect %s: max_subject_length must not be negative", d.Name)
	}
	return nil
}

// contains checks if a slice contains a specific string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
