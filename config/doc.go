// Package config loads statusctl settings.
//
// Load uses Viper to merge, weakest first: built-in defaults, a YAML config
// file, a .env file together with the process environment, bound command
// line flags, and explicit overrides. The result has defaults applied and is
// validated before it is returned.
//
// # Usage
//
//	settings, err := config.Load(config.WithConfigFile("statusctl.yml"))
//
// Environment variables use the STATUSCTL_ prefix with dots replaced by
// underscores (e.g., STATUSCTL_HTTP_PORT, STATUSCTL_TELEMETRY_ENABLED).
package config
