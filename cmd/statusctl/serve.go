package main

import (
	"context"
	"errors"
	"time"

	"github.com/kbukum/statuscode/logger"
	"github.com/kbukum/statuscode/lookup"
	"github.com/kbukum/statuscode/observability"
	"github.com/kbukum/statuscode/server"
	"github.com/kbukum/statuscode/status"
	"github.com/kbukum/statuscode/version"
)

const (
	instrumentationName = "github.com/kbukum/statuscode"
	telemetryTimeout    = 5 * time.Second
)

func runServe(ctx context.Context, a *app, _ []string) int {
	s := a.settings
	if addr, _ := a.flags.GetString("addr"); addr != "" {
		if err := s.HTTP.SetAddr(addr); err != nil {
			return a.fail(err)
		}
	}

	ignored, err := s.Telemetry.Ignored()
	if err != nil {
		return a.fail(err)
	}

	shutdownTelemetry, components, err := startTelemetry(ctx, s.Name, s.Environment, &s.Telemetry)
	if err != nil {
		return a.fail(err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), telemetryTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			a.log.Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", err))
		}
	}()

	metrics, err := observability.NewMetrics(observability.Meter(instrumentationName), ignored...)
	if err != nil {
		return a.fail(err)
	}

	srv := server.New(s.HTTP, a.log)
	srv.ApplyDefaults(s.Name, metrics)
	srv.AddHealthChecker(observability.HealthCheckerFunc(lookupHealth))
	if err := srv.Start(ctx); err != nil {
		return a.fail(err)
	}

	for _, c := range components {
		srv.Registry().RegisterComponent(c.Name, c.Type, c.Status, c.Details)
	}
	srv.Registry().Log(a.log)

	<-ctx.Done()
	a.log.Info("received shutdown signal, graceful shutdown starting")
	if err := srv.Stop(context.WithoutCancel(ctx)); err != nil {
		return a.fail(err)
	}
	return exitOK
}

// startTelemetry installs the OTLP tracer and meter providers when telemetry
// is enabled. The returned function shuts down whatever was started.
func startTelemetry(ctx context.Context, service, env string, cfg *observability.Config) (func(context.Context) error, []logger.Component, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil, nil
	}

	tp, err := observability.InitTracer(ctx, cfg.Tracer(service, version.Version, env))
	if err != nil {
		return nil, nil, err
	}
	mp, err := observability.InitMeter(ctx, cfg.Meter(service, version.Version, env))
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, nil, err
	}

	components := []logger.Component{
		{Name: "tracer", Type: "otlp", Status: "active", Details: cfg.Endpoint},
		{Name: "meter", Type: "otlp", Status: "active", Details: cfg.Endpoint},
	}
	shutdown := func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}
	return shutdown, components, nil
}

// lookupHealth resolves a known condition to check the catalog is usable.
func lookupHealth(context.Context) observability.Health {
	_, err := lookup.Resolve(status.IOError.String())
	if err == nil {
		return observability.HealthFromStatus("lookup", nil)
	}
	code, ok := status.FromError(err)
	if !ok {
		code = status.FromErrc(status.Unknown)
	}
	return observability.HealthFromStatus("lookup", code)
}
