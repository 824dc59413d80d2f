// Package server provides the status lookup HTTP server: Gin behind an h2c
// handler so it serves HTTP/1.1 and cleartext HTTP/2 on one port.
//
// # Endpoints
//
//   - GET /v1/codes: the catalog of generic conditions
//   - GET /v1/codes/:spec: describes one condition ("EINVAL", "timed_out", "22", "NOT_FOUND")
//   - GET /v1/compare?a=&b=: reports whether two specs are equivalent
//   - GET /health: component health
//   - GET /version: build version
//
// Failures are rendered from status codes with RespondStatus and
// RespondWithError, so every error body names its generic condition.
package server
