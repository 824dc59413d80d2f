package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kbukum/statuscode/logger"
)

const (
	// ServiceName names the process in logs and config file lookups.
	ServiceName = "statusctl"
	// EnvPrefix prefixes every environment override, e.g. STATUSCTL_HTTP_PORT.
	EnvPrefix = "STATUSCTL"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadEnv loads path into the process environment without overriding
// variables that are already set.
func (RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver finds config and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved config and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles returns explicit paths from opts, otherwise searches the
// standard locations for serviceName.
func (r *Resolver) ResolveFiles(serviceName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.first(configSearchPaths(serviceName))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.first(envSearchPaths(serviceName))
	}
	return resolved
}

func (r *Resolver) first(paths []string) string {
	for _, p := range paths {
		if r.FileSystem.Exists(p) {
			return p
		}
	}
	return ""
}

func configSearchPaths(serviceName string) []string {
	var paths []string
	for _, ext := range []string{"yml", "yaml"} {
		paths = append(paths,
			fmt.Sprintf("./%s.%s", serviceName, ext),
			fmt.Sprintf("./cmd/%s/config.%s", serviceName, ext),
			fmt.Sprintf("./config/%s.%s", serviceName, ext),
			fmt.Sprintf("./config/config.%s", ext),
		)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, serviceName, "config.yml"))
	}
	return paths
}

func envSearchPaths(serviceName string) []string {
	return []string{
		fmt.Sprintf("./.env.%s", serviceName),
		"./.env",
		fmt.Sprintf("./cmd/%s/.env", serviceName),
		"./config/.env",
	}
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // explicit config file; a read failure is an error
	EnvFile    string // explicit .env file; a load failure is an error
	Flags      map[string]*pflag.Flag
	Overrides  map[string]any
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// WithFlag binds a command line flag to key. The flag wins over every other
// source when it was set on the command line.
func WithFlag(key string, flag *pflag.Flag) LoaderOption {
	return func(lc *LoaderConfig) {
		if flag == nil {
			return
		}
		if lc.Flags == nil {
			lc.Flags = make(map[string]*pflag.Flag)
		}
		lc.Flags[key] = flag
	}
}

// WithOverride forces key to value.
func WithOverride(key string, value any) LoaderOption {
	return func(lc *LoaderConfig) {
		if lc.Overrides == nil {
			lc.Overrides = make(map[string]any)
		}
		lc.Overrides[key] = value
	}
}

// Load builds the statusctl settings. Sources, weakest first: defaults, the
// YAML config file, the .env file and the process environment (STATUSCTL_
// prefix, dots as underscores), bound flags, overrides. The result has
// defaults applied and is validated.
func Load(opts ...LoaderOption) (*Settings, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(ServiceName, lc)
	log := logger.Get("config")

	v := viper.New()
	setDefaults(v)

	if files.ConfigFile != "" {
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			if lc.ConfigFile != "" {
				return nil, fmt.Errorf("failed to read config file %s: %w", files.ConfigFile, err)
			}
			log.Warn("failed to load config file", logger.Fields("file", files.ConfigFile, logger.FieldError, err.Error()))
		} else {
			log.Debug("config file loaded", logger.Fields("file", files.ConfigFile))
		}
	}

	if files.EnvFile != "" {
		if err := lc.FileSystem.LoadEnv(files.EnvFile); err != nil {
			if lc.EnvFile != "" {
				return nil, fmt.Errorf("failed to load env file %s: %w", files.EnvFile, err)
			}
			log.Warn("failed to load .env file", logger.Fields("file", files.EnvFile, logger.FieldError, err.Error()))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, flag := range lc.Flags {
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
		}
	}
	for key, value := range lc.Overrides {
		v.Set(key, value)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config for service %s: %w", ServiceName, err)
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// setDefaults registers every settings key with viper, which AutomaticEnv
// needs to see environment-only values during Unmarshal.
func setDefaults(v *viper.Viper) {
	d := defaults()
	values := map[string]any{
		"name":        d.Name,
		"environment": d.Environment,
		"version":     d.Version,
		"debug":       false,

		"logging.level":     d.Logging.Level,
		"logging.format":    d.Logging.Format,
		"logging.output":    d.Logging.Output,
		"logging.no_color":  d.Logging.NoColor,
		"logging.timestamp": d.Logging.Timestamp,
		"logging.caller":    d.Logging.Caller,

		"http.host":             d.HTTP.Host,
		"http.port":             d.HTTP.Port,
		"http.read_timeout":     d.HTTP.ReadTimeout,
		"http.write_timeout":    d.HTTP.WriteTimeout,
		"http.idle_timeout":     d.HTTP.IdleTimeout,
		"http.shutdown_timeout": d.HTTP.ShutdownTimeout,
		"http.max_spec_length":  d.HTTP.MaxSpecLength,

		"telemetry.enabled":     d.Telemetry.Enabled,
		"telemetry.endpoint":    d.Telemetry.Endpoint,
		"telemetry.insecure":    d.Telemetry.Insecure,
		"telemetry.sample_rate": 1.0,
		"telemetry.interval":    d.Telemetry.Interval,
		"telemetry.ignore":      []string{},

		"output.format": d.Output.Format,
	}
	for key, value := range values {
		v.SetDefault(key, value)
	}
}
