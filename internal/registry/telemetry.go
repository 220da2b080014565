package registry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "heritage/internal/registry"

type telemetry struct {
	tracer    trace.Tracer
	mutations metric.Int64Counter
	searches  metric.Int64Counter
}

func newTelemetry(mp metric.MeterProvider, tp trace.TracerProvider) (*telemetry, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	meter := mp.Meter(instrumentationName)
	mutations, err := meter.Int64Counter("heritage.registry.mutations",
		metric.WithDescription("Site and reference data mutations by operation and outcome"))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	searches, err := meter.Int64Counter("heritage.registry.searches",
		metric.WithDescription("Site searches by whether any criterion was set"))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &telemetry{
		tracer:    tp.Tracer(instrumentationName),
		mutations: mutations,
		searches:  searches,
	}, nil
}

// start opens a span named after the registry operation. The returned func
// ends it, recording err when set.
func (t *telemetry) start(ctx context.Context, op string) (context.Context, func(err *error)) {
	ctx, span := t.tracer.Start(ctx, "registry."+op)

	return ctx, func(err *error) {
		if err != nil && *err != nil {
			span.RecordError(*err)
			span.SetStatus(codes.Error, (*err).Error())
		}
		span.End()
	}
}

func (t *telemetry) mutation(ctx context.Context, op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	t.mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("outcome", outcome),
	))
}

func (t *telemetry) search(ctx context.Context, filtered bool) {
	t.searches.Add(ctx, 1, metric.WithAttributes(attribute.Bool("filtered", filtered)))
}
