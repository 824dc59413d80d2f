package config

import (
	"fmt"
	"slices"
)

var validEnvironments = []string{"development", "staging", "production"}

// BaseConfig contains the fields every process needs.
type BaseConfig struct {
	Name        string `yaml:"name" mapstructure:"name" json:"name"`
	Environment string `yaml:"environment" mapstructure:"environment" json:"environment"`
	Version     string `yaml:"version" mapstructure:"version" json:"version"`
	Debug       bool   `yaml:"debug" mapstructure:"debug" json:"debug"`
}

// ApplyDefaults applies default values to base configuration.
func (c *BaseConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = ServiceName
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
}

// Validate validates base configuration.
func (c *BaseConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("base.name is required")
	}
	if !slices.Contains(validEnvironments, c.Environment) {
		return fmt.Errorf("base.environment must be one of %v (got: %s)", validEnvironments, c.Environment)
	}
	return nil
}
