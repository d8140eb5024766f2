// Package telemetry wires OpenTelemetry tracing and metrics for search runs.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
)

var (
	// ErrNilContext is returned by Init when ctx is nil.
	ErrNilContext = errors.New("telemetry: nil context")
	// ErrUnknownExporter is returned for exporter names other than stdout and none.
	ErrUnknownExporter = errors.New("telemetry: unknown exporter")
)

// Config selects the exporters.
type Config struct {
	ServiceName    string
	ServiceVersion string

	// TraceExporter is "stdout" or "none".
	TraceExporter string
	// MetricExporter is "stdout" or "none".
	MetricExporter string

	// Writer receives stdout exporter output. Defaults to os.Stderr so
	// telemetry never mixes with rendered results.
	Writer io.Writer
}

// DefaultConfig returns a config with both exporters disabled.
func DefaultConfig() Config {
	return Config{
		ServiceName:    "gridpath",
		ServiceVersion: "0.1.0",
		TraceExporter:  "none",
		MetricExporter: "none",
		Writer:         os.Stderr,
	}
}

// Init installs global tracer and meter providers according to cfg and
// returns a shutdown func that flushes them. Call shutdown before exit.
func Init(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}

	var shutdownFuncs []func(context.Context) error
	shutdown = func(ctx context.Context) error {
		var errs []error
		for _, fn := range shutdownFuncs {
			if err := fn(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	switch cfg.TraceExporter {
	case "none", "":
	case "stdout":
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(cfg.Writer))
		if err != nil {
			return nil, fmt.Errorf("telemetry: create trace exporter: %w", err)
		}
		tp := trace.NewTracerProvider(
			trace.WithBatcher(exporter),
			trace.WithResource(res),
		)
		otel.SetTracerProvider(tp)
		shutdownFuncs = append(shutdownFuncs, tp.Shutdown)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, cfg.TraceExporter)
	}

	switch cfg.MetricExporter {
	case "none", "":
	case "stdout":
		exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(cfg.Writer))
		if err != nil {
			return nil, fmt.Errorf("telemetry: create metric exporter: %w", err)
		}
		mp := metric.NewMeterProvider(
			metric.WithResource(res),
			metric.WithReader(metric.NewPeriodicReader(exporter)),
		)
		otel.SetMeterProvider(mp)
		shutdownFuncs = append(shutdownFuncs, mp.Shutdown)
	default:
		_ = shutdown(ctx)
		return nil, fmt.Errorf("%w: %s", ErrUnknownExporter, cfg.MetricExporter)
	}

	return shutdown, nil
}
