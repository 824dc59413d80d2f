// Package middleware holds the HTTP middleware of the status server.
//
// RequestLogger runs as plain net/http middleware around the whole server;
// the rest are Gin handlers: Recovery, RequestID, Tracing and Errors. Handlers
// that respond with a status code call SetStatus so Tracing can record it.
package middleware
