// Package tracing sets up the OpenTelemetry tracer provider. Finished spans
// are written to the application log at debug level.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

// LogExporter writes finished spans to a zap logger.
type LogExporter struct {
	logger *zap.Logger
}

var _ sdktrace.SpanExporter = (*LogExporter)(nil)

func NewLogExporter(logger *zap.Logger) *LogExporter {
	return &LogExporter{logger: logger}
}

// ExportSpans logs one entry per span. Failed spans are logged at warn level.
func (e *LogExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		fields := []zap.Field{
			zap.String("span", s.Name()),
			zap.String("traceID", s.SpanContext().TraceID().String()),
			zap.String("spanID", s.SpanContext().SpanID().String()),
			zap.Duration("duration", s.EndTime().Sub(s.StartTime())),
		}
		if parent := s.Parent(); parent.IsValid() {
			fields = append(fields, zap.String("parentSpanID", parent.SpanID().String()))
		}

		if status := s.Status(); status.Code == codes.Error {
			e.logger.Warn("span failed", append(fields, zap.String("error", status.Description))...)

			continue
		}
		e.logger.Debug("span finished", fields...)
	}

	return nil
}

func (e *LogExporter) Shutdown(context.Context) error {
	return nil
}

// NewTracerProvider returns a tracer provider sampling sampleRatio of the
// root spans and exporting them to logger in batches.
func NewTracerProvider(logger *zap.Logger, sampleRatio float64) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRatio))),
		sdktrace.WithBatcher(NewLogExporter(logger)),
	)
}
