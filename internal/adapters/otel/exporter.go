package otel

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/plasticbusters/plasticbusters/internal/ports"
)

const (
	serviceName    = "plasticbusters"
	serviceVersion = "1.0.0"
)

// ErrDisabled is returned by NewExporter when export is not configured.
var ErrDisabled = errors.New("OTEL exporter is disabled or endpoint not configured")

// Exporter exports measurement metrics to an OTEL Collector.
type Exporter struct {
	provider       *sdkmetric.MeterProvider
	submitted      metric.Int64Counter
	rejected       metric.Int64Counter
	removed        metric.Int64Counter
	plasticTotal   metric.Float64Counter
	degradationHst metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, ErrDisabled
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	e, err := newExporter(provider)
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, err
	}
	return e, nil
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	submitted, err := meter.Int64Counter(
		"plasticbusters_measurements_submitted_total",
		metric.WithDescription("Accepted measurement submissions"),
		metric.WithUnit("{measurement}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating submitted counter: %w", err)
	}

	rejected, err := meter.Int64Counter(
		"plasticbusters_measurements_rejected_total",
		metric.WithDescription("Rejected measurement submissions, by field"),
		metric.WithUnit("{field}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rejected counter: %w", err)
	}

	removed, err := meter.Int64Counter(
		"plasticbusters_measurements_removed_total",
		metric.WithDescription("Measurement removals"),
		metric.WithUnit("{measurement}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating removed counter: %w", err)
	}

	plasticTotal, err := meter.Float64Counter(
		"plasticbusters_plastic_mass_kg",
		metric.WithDescription("Plastic mass recorded in measurements"),
		metric.WithUnit("kg"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating plastic counter: %w", err)
	}

	degradationHst, err := meter.Float64Histogram(
		"plasticbusters_degradation_rate",
		metric.WithDescription("Degradation rate of submitted measurements"),
		metric.WithUnit("%"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating degradation histogram: %w", err)
	}

	return &Exporter{
		provider:       provider,
		submitted:      submitted,
		rejected:       rejected,
		removed:        removed,
		plasticTotal:   plasticTotal,
		degradationHst: degradationHst,
	}, nil
}

func (e *Exporter) MeasurementSubmitted(ctx context.Context, m *ports.SubmittedMetrics) {
	opt := metric.WithAttributes(attribute.String("fungus_type", m.FungusType))

	e.submitted.Add(ctx, 1, opt)
	e.plasticTotal.Add(ctx, m.PlasticAmountKg, opt)
	e.degradationHst.Record(ctx, m.DegradationRate, opt)
}

func (e *Exporter) MeasurementRejected(ctx context.Context, fields []string) {
	for _, f := range fields {
		e.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("field", f)))
	}
}

func (e *Exporter) MeasurementRemoved(ctx context.Context, found bool) {
	e.removed.Add(ctx, 1, metric.WithAttributes(attribute.Bool("found", found)))
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
