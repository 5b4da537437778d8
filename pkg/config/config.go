// Package config loads and validates evaluation settings.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-graphmetrics/pkg/logging"
	"github.com/dd0wney/cluso-graphmetrics/pkg/metrics"
	"github.com/dd0wney/cluso-graphmetrics/pkg/nmi"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Settings configures how cover comparisons are run
type Settings struct {
	Variant  string `yaml:"variant" validate:"required,oneof=literal shannon"`
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Metrics  bool   `yaml:"metrics"`
}

// Default returns the default settings
func Default() Settings {
	return Settings{
		Variant:  "literal",
		LogLevel: "info",
	}
}

// Parse decodes YAML settings, filling unset fields from the defaults
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load reads settings from a YAML file
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return Parse(data)
}

// Validate checks the settings against their constraints
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// Options builds calculator options from the settings. The logger, when
// given, is switched to the configured level; the registry is only attached
// when metrics are enabled (nil falls back to the default registry).
func (s Settings) Options(logger logging.Logger, registry *metrics.Registry) nmi.Options {
	opts := nmi.DefaultOptions()
	if s.Variant == "shannon" {
		opts.Variant = nmi.VariantShannon
	}
	if logger != nil {
		logger.SetLevel(logging.ParseLevel(s.LogLevel))
		opts.Logger = logger
	}
	if s.Metrics {
		if registry == nil {
			registry = metrics.DefaultRegistry()
		}
		opts.Metrics = registry
	}
	return opts
}

// formatValidationError converts validator errors to user-friendly messages
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	// Return the first validation error in a user-friendly format
	for _, e := range validationErrs {
		field := e.Field()
		tag := e.Tag()
		param := e.Param()

		switch tag {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, tag)
		}
	}

	return err
}
