package otel

import (
	"context"

	"github.com/plasticbusters/plasticbusters/internal/ports"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) MeasurementSubmitted(ctx context.Context, m *ports.SubmittedMetrics) {}

func (e *NoOpExporter) MeasurementRejected(ctx context.Context, fields []string) {}

func (e *NoOpExporter) MeasurementRemoved(ctx context.Context, found bool) {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
