package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/statuscode/logger"
	"github.com/kbukum/statuscode/observability"
)

// Tracing starts a server span per request, continuing any trace propagated
// in the request headers. When the handler attached a status code with
// SetStatus it is recorded on the span and, if metrics is not nil, counted.
func Tracing(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(semconv.HTTPMethodKey.String(c.Request.Method)),
		)
		defer span.End()

		if sc := span.SpanContext(); sc.IsValid() {
			ctx = logger.ContextWithTrace(ctx, sc.TraceID().String(), sc.SpanID().String())
		}
		if id, ok := c.Get(logger.FieldRequestID); ok {
			if s, ok := id.(string); ok && s != "" {
				span.SetAttributes(attribute.String(observability.AttrRequestID, s))
			}
		}
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		if metrics != nil {
			metrics.RecordRequestStart(ctx)
		}

		c.Next()

		code := c.Writer.Status()
		route := c.FullPath()
		span.SetAttributes(
			semconv.HTTPRouteKey.String(route),
			semconv.HTTPStatusCodeKey.Int(code),
		)
		if sc, ok := GetStatus(c); ok {
			observability.RecordStatus(ctx, sc)
			if metrics != nil {
				metrics.RecordStatus(ctx, sc)
			}
		} else if code >= 500 {
			span.SetStatus(codes.Error, c.Errors.String())
		}
		if metrics != nil {
			metrics.RecordRequestEnd(ctx, c.Request.Method, route, code, time.Since(start))
		}
	}
}
