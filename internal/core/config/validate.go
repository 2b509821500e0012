package config

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/choir/internal/core/content"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// file accessibility and the alignment of document sentences with summary
// sections. The configPath argument specifies the config file location to
// validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	if err := criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validatePattern(),
	); err != nil {
		return err
	}

	return c.validateAlignment()
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.Settings.APIKey == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Settings",
			Item:     "api_key",
			Message:  "no API key configured; set CHOIR_API_KEY or run choir settings",
		})
	}

	if c.Content.TextFile != "" && c.Content.SectionsDir == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Content",
			Item:     "sections_dir",
			Message:  "custom text uses the built-in summary sections",
		})
	}

	return warnings
}

// validateFileAccess checks config file, data directory and content paths.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("content.text_file", c.Content.TextFile, isReadableFile),
		criterio.Run("content.sections_dir", c.Content.SectionsDir, isDirectory),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func (c *Config) validatePattern() error {
	if doublestar.ValidatePattern(c.Content.SectionsPattern) {
		return nil
	}
	return criterio.NewFieldErrors("content.sections_pattern",
		fmt.Errorf("invalid glob %q", c.Content.SectionsPattern))
}

// validateAlignment loads the configured document and reports a field error
// when the sentence count differs from the section count.
func (c *Config) validateAlignment() error {
	doc, err := content.Load(c.ContentOptions())
	if err != nil {
		return criterio.NewFieldErrors("content", err)
	}

	var errs criterio.FieldErrorsBuilder
	if err := doc.Check(); err != nil {
		errs = errs.Append("content.sections", err)
	}
	if len(doc.Sections) == 0 {
		errs = errs.Append("content.sections_pattern",
			fmt.Errorf("no section files match %q", c.Content.SectionsPattern))
	}
	return errs.ToError()
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func isDirectory(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	return nil
}

func isReadableFile(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("is a directory, not a file")
	}
	return nil
}
