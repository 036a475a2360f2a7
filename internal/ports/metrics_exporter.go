package ports

import "context"

// MetricsExporter exports measurement activity to an external observability system.
type MetricsExporter interface {
	// MeasurementSubmitted records an accepted submission.
	MeasurementSubmitted(ctx context.Context, m *SubmittedMetrics)
	// MeasurementRejected records a submission refused for the given fields.
	MeasurementRejected(ctx context.Context, fields []string)
	// MeasurementRemoved records a removal; found is false for no-op removals.
	MeasurementRemoved(ctx context.Context, found bool)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// SubmittedMetrics describes an accepted measurement.
type SubmittedMetrics struct {
	FungusType      string
	PlasticAmountKg float64
	FungusAmountG   float64
	DegradationRate float64
}
