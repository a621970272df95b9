package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	var errors ValidationErrors

	errors = append(errors, c.validateAuth()...)
	errors = append(errors, c.validateScan()...)
	errors = append(errors, c.validateOutput()...)
	errors = append(errors, c.validateLogging()...)

	if len(errors) > 0 {
		return errors
	}
	return nil
}

func (c *Config) validateAuth() ValidationErrors {
	var errors ValidationErrors

	if c.Auth.CredentialsFile == "" {
		errors = append(errors, ValidationError{
			Field:   "auth.credentials_file",
			Message: "credentials file path is required",
		})
	}
	if c.Auth.TokenFile == "" {
		errors = append(errors, ValidationError{
			Field:   "auth.token_file",
			Message: "token file path is required",
		})
	}

	return errors
}

func (c *Config) validateScan() ValidationErrors {
	var errors ValidationErrors

	if c.Scan.PageSize < 1 || c.Scan.PageSize > MaxPageSize {
		errors = append(errors, ValidationError{
			Field:   "scan.page_size",
			Message: fmt.Sprintf("page size must be between 1 and %d", MaxPageSize),
		})
	}
	if len(c.Scan.Extensions) == 0 {
		errors = append(errors, ValidationError{
			Field:   "scan.extensions",
			Message: "at least one image extension must be configured",
		})
	}
	for _, ext := range c.Scan.Extensions {
		if strings.TrimSpace(ext) == "" {
			errors = append(errors, ValidationError{
				Field:   "scan.extensions",
				Message: "extensions must not be blank",
			})
			break
		}
	}

	return errors
}

func (c *Config) validateOutput() ValidationErrors {
	var errors ValidationErrors

	if c.Output.File == "" {
		errors = append(errors, ValidationError{
			Field:   "output.file",
			Message: "output file path is required",
		})
	}

	return errors
}

func (c *Config) validateLogging() ValidationErrors {
	var errors ValidationErrors

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Message: "level must be one of: debug, info, warn, error",
		})
	}

	switch c.Logging.Format {
	case "", "json", "text":
	default:
		errors = append(errors, ValidationError{
			Field:   "logging.format",
			Message: "format must be 'json' or 'text'",
		})
	}

	return errors
}
