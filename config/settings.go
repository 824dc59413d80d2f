package config

import (
	"fmt"

	"github.com/kbukum/statuscode/logger"
	"github.com/kbukum/statuscode/observability"
	"github.com/kbukum/statuscode/server"
	"github.com/kbukum/statuscode/validation"
)

// Settings is the complete statusctl configuration.
type Settings struct {
	BaseConfig `yaml:",inline" mapstructure:",squash"`
	Logging    logger.Config        `yaml:"logging" mapstructure:"logging" json:"logging"`
	HTTP       server.Config        `yaml:"http" mapstructure:"http" json:"http"`
	Telemetry  observability.Config `yaml:"telemetry" mapstructure:"telemetry" json:"telemetry"`
	Output     OutputConfig         `yaml:"output" mapstructure:"output" json:"output"`
}

// OutputConfig controls how the CLI prints results.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format" json:"format" validate:"oneof=table json"`
}

// ApplyDefaults applies default values to every section.
func (s *Settings) ApplyDefaults() {
	s.BaseConfig.ApplyDefaults()
	s.Logging.ApplyDefaults()
	s.HTTP.ApplyDefaults()
	s.Telemetry.ApplyDefaults()
	if s.Output.Format == "" {
		s.Output.Format = "table"
	}
}

// Validate validates every section.
func (s *Settings) Validate() error {
	if err := s.BaseConfig.Validate(); err != nil {
		return err
	}
	if err := s.Logging.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(s); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

// defaults returns Settings with every default applied.
func defaults() Settings {
	var s Settings
	s.ApplyDefaults()
	return s
}
