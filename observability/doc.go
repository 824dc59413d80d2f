// Package observability provides OpenTelemetry tracing and metrics for
// status codes.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, cfg.Telemetry.Tracer("statusctl", version.Version, env))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanResolve)
//	defer span.End()
//	observability.RecordStatus(ctx, code)
//
// Metrics:
//
//	metrics, err := observability.NewMetrics(observability.Meter("statusctl"), status.OperationCanceled)
//	metrics.RecordStatus(ctx, code)
//
// Health checks:
//
//	health := observability.NewServiceHealth("statusctl", version.Version)
//	health.AddComponent(checker.CheckHealth(ctx))
package observability
