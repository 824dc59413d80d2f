// Package endpoint provides the operational HTTP handlers of the status
// server: /health and /version.
package endpoint
