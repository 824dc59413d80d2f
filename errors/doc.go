// Package errors provides the application error envelope used at the edges
// of statuscode: configuration, validation and the HTTP server.
//
// An AppError carries a machine-readable ErrorCode, an HTTP status and a
// retryable flag, following RFC 7807 and Google AIP-193. Every ErrorCode
// stands for a generic failure condition (status.Errc), so an AppError is a
// status.Maker and compares by meaning:
//
//	err := errors.NotFound("user", "42")
//	stderrors.Is(err, status.NoSuchFileOrDirectory) // true
//
// FromStatus goes the other way and renders any status code as an AppError.
package errors
