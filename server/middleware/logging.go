package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/kbukum/statuscode/logger"
)

var quietPaths = []string{"/health", "/version"}

// RequestLogger returns middleware that logs every request with method,
// path, status code, response size and duration. Health and version probes
// are skipped.
func RequestLogger(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(quietPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)

			fields := logger.Fields(
				logger.FieldMethod, r.Method,
				logger.FieldPath, r.URL.Path,
				logger.FieldStatus, sw.status,
				"bytes", sw.size,
			)
			logger.MergeWithDuration(fields, time.Since(start))
			if id := r.Header.Get(RequestIDHeader); id != "" {
				fields[logger.FieldRequestID] = id
			}
			if errc := sw.Header().Get(ErrcHeader); errc != "" {
				fields[logger.FieldErrc] = errc
			}
			logByStatus(log, fields, sw.status)
		})
	}
}

// logByStatus logs request fields at a level chosen by the HTTP status code.
func logByStatus(log *logger.Logger, fields map[string]interface{}, status int) {
	switch {
	case status >= 500:
		log.Error("Request completed", fields)
	case status >= 400:
		log.Warn("Request completed", fields)
	default:
		log.Debug("Request completed", fields)
	}
}
