package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/kbukum/statuscode/status"
)

// StatusAttributes describes c as span or metric attributes. It returns nil
// for an empty code.
func StatusAttributes(c status.Code) []attribute.KeyValue {
	if c == nil || c.Empty() {
		return nil
	}
	d := c.Domain()
	return []attribute.KeyValue{
		attribute.String(AttrStatusDomain, d.Name()),
		attribute.String(AttrStatusDomainID, d.ID().String()),
		attribute.String(AttrStatusErrc, c.Generic().String()),
		attribute.String(AttrStatusMessage, c.Message()),
	}
}

// RecordStatus annotates the span in ctx with c. A failure also marks the
// span as errored; a success or empty code only adds attributes.
func RecordStatus(ctx context.Context, c status.Code) {
	span := SpanFromContext(ctx)
	if !span.IsRecording() || c == nil || c.Empty() {
		return
	}
	span.SetAttributes(StatusAttributes(c)...)
	if !c.Failure() {
		return
	}
	if err, ok := c.(error); ok {
		span.RecordError(err)
	}
	span.SetStatus(codes.Error, c.Message())
}
