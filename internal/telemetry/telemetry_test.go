package telemetry_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/telemetry"
)

func TestInit(t *testing.T) {
	_, err := telemetry.Init(nil, telemetry.DefaultConfig())
	assert.ErrorIs(t, err, telemetry.ErrNilContext)

	shutdown, err := telemetry.Init(context.Background(), telemetry.DefaultConfig())
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	cfg := telemetry.DefaultConfig()
	cfg.TraceExporter = "otlp"
	_, err = telemetry.Init(context.Background(), cfg)
	assert.ErrorIs(t, err, telemetry.ErrUnknownExporter)
}

func TestInit_Stdout(t *testing.T) {
	var buf bytes.Buffer
	cfg := telemetry.DefaultConfig()
	cfg.TraceExporter = "stdout"
	cfg.MetricExporter = "stdout"
	cfg.Writer = &buf

	shutdown, err := telemetry.Init(context.Background(), cfg)
	require.NoError(t, err)

	rec, err := telemetry.Global()
	require.NoError(t, err)
	ctx, span := rec.StartSearch(context.Background(), "uniform", grid.Point{})
	rec.EndSearch(ctx, span, telemetry.Search{Policy: "uniform", Found: true})

	require.NoError(t, shutdown(context.Background()))
	assert.Contains(t, buf.String(), "gridpath.search")
	assert.Contains(t, buf.String(), "gridpath_search_total")
}

func TestRecorder(t *testing.T) {
	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer tp.Shutdown(context.Background())
	defer mp.Shutdown(context.Background())

	rec, err := telemetry.NewRecorder(tp, mp)
	require.NoError(t, err)

	ctx, span := rec.StartSearch(context.Background(), "crucible", grid.Point{Row: 1, Col: 2})
	rec.EndSearch(ctx, span, telemetry.Search{
		Policy: "crucible", Duration: 5 * time.Millisecond, Found: false, Settled: 12, Pushed: 30,
	})

	ended := spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "gridpath.search", ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Contains(t, ended[0].Attributes(), attribute.String("gridpath.start", "1,2"))
	assert.Contains(t, ended[0].Attributes(), attribute.Int("gridpath.settled", 12))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}
	require.Contains(t, byName, "gridpath_search_total")
	require.Contains(t, byName, "gridpath_search_duration_seconds")
	require.Contains(t, byName, "gridpath_states_settled")

	sum, ok := byName["gridpath_search_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(1), sum.DataPoints[0].Value)
	found, _ := sum.DataPoints[0].Attributes.Value("found")
	assert.False(t, found.AsBool())
}
