package observability

import (
	"fmt"
	"time"

	"github.com/kbukum/statuscode/status"
)

// Config is the telemetry section of the service settings.
type Config struct {
	Enabled    bool          `yaml:"enabled" mapstructure:"enabled" json:"enabled"`
	Endpoint   string        `yaml:"endpoint" mapstructure:"endpoint" json:"endpoint" validate:"omitempty,hostname_port"`
	Insecure   bool          `yaml:"insecure" mapstructure:"insecure" json:"insecure"`
	SampleRate float64       `yaml:"sample_rate" mapstructure:"sample_rate" json:"sample_rate" validate:"min=0,max=1"`
	Interval   time.Duration `yaml:"interval" mapstructure:"interval" json:"interval"`
	// Ignore lists generic conditions that are expected and not counted as
	// errored, e.g. "operation_canceled".
	Ignore []string `yaml:"ignore" mapstructure:"ignore" json:"ignore" validate:"dive,errc"`
}

// ApplyDefaults applies default values to telemetry configuration.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.Interval == 0 {
		c.Interval = 15 * time.Second
	}
}

// Tracer returns the tracer configuration for a service.
func (c *Config) Tracer(service, version, environment string) *TracerConfig {
	return &TracerConfig{
		ServiceName:    service,
		ServiceVersion: version,
		Environment:    environment,
		Endpoint:       c.Endpoint,
		Insecure:       c.Insecure,
		SampleRate:     c.SampleRate,
	}
}

// Meter returns the meter configuration for a service.
func (c *Config) Meter(service, version, environment string) *MeterConfig {
	return &MeterConfig{
		ServiceName:    service,
		ServiceVersion: version,
		Environment:    environment,
		Endpoint:       c.Endpoint,
		Insecure:       c.Insecure,
		Interval:       c.Interval,
	}
}

// Ignored parses Ignore.
func (c *Config) Ignored() ([]status.Errc, error) {
	out := make([]status.Errc, 0, len(c.Ignore))
	for _, s := range c.Ignore {
		e, err := status.ParseErrc(s)
		if err != nil {
			return nil, fmt.Errorf("telemetry.ignore: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}
