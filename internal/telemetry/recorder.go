package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/grid"
)

const instrumentationName = "github.com/katalvlaran/gridpath"

// Recorder creates search spans and records search metrics.
type Recorder struct {
	tracer trace.Tracer

	duration metric.Float64Histogram
	total    metric.Int64Counter
	settled  metric.Int64Histogram
}

// Search describes one finished search.
type Search struct {
	Policy   string
	Duration time.Duration
	Found    bool
	Cost     int64
	Settled  int
	Pushed   int
}

// NewRecorder builds a Recorder on the given providers.
func NewRecorder(tp trace.TracerProvider, mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(instrumentationName)
	r := &Recorder{tracer: tp.Tracer(instrumentationName)}

	var err error
	r.duration, err = meter.Float64Histogram(
		"gridpath_search_duration_seconds",
		metric.WithDescription("Duration of one shortest-path search"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	r.total, err = meter.Int64Counter(
		"gridpath_search_total",
		metric.WithDescription("Total number of searches"),
	)
	if err != nil {
		return nil, err
	}
	r.settled, err = meter.Int64Histogram(
		"gridpath_states_settled",
		metric.WithDescription("States settled per search"),
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// Global builds a Recorder on the global otel providers, as installed by Init.
func Global() (*Recorder, error) {
	return NewRecorder(otel.GetTracerProvider(), otel.GetMeterProvider())
}

// StartSearch opens the gridpath.search span.
func (r *Recorder) StartSearch(ctx context.Context, policy string, start grid.Point) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, "gridpath.search",
		trace.WithAttributes(
			attribute.String("gridpath.policy", policy),
			attribute.String("gridpath.start", start.String()),
		),
	)
}

// EndSearch records s on span and on the metric instruments, then ends span.
func (r *Recorder) EndSearch(ctx context.Context, span trace.Span, s Search) {
	span.SetAttributes(
		attribute.Bool("gridpath.found", s.Found),
		attribute.Int64("gridpath.cost", s.Cost),
		attribute.Int("gridpath.settled", s.Settled),
		attribute.Int("gridpath.pushed", s.Pushed),
	)
	if !s.Found {
		span.SetStatus(codes.Error, "goal unreachable")
	}
	span.End()

	attrs := metric.WithAttributes(
		attribute.String("policy", s.Policy),
		attribute.Bool("found", s.Found),
	)
	r.duration.Record(ctx, s.Duration.Seconds(), attrs)
	r.total.Add(ctx, 1, attrs)
	r.settled.Record(ctx, int64(s.Settled), metric.WithAttributes(attribute.String("policy", s.Policy)))
}
