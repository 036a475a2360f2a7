// Package dashboard turns raw measurement form input into records and keeps
// the session's dashboard state derived from its store.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/plasticbusters/plasticbusters/internal/domain"
	"github.com/plasticbusters/plasticbusters/internal/ports"
)

// Service is the measurement form controller of one session.
type Service struct {
	store   ports.MeasurementStore
	metrics ports.MetricsExporter
	logger  *slog.Logger
	now     func() time.Time
	newID   func() string
}

// Option customises a Service.
type Option func(*Service)

// WithClock overrides the clock used to date new records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides the generator of record IDs.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(store ports.MeasurementStore, metrics ports.MetricsExporter, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:   store,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates the input and appends the new record. On a validation
// failure the store is left untouched and domain.ValidationErrors is returned.
func (s *Service) Submit(ctx context.Context, in domain.MeasurementInput) (domain.Measurement, error) {
	parsed, err := domain.ParseMeasurementInput(in)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, len(verrs))
			for i, e := range verrs {
				fields[i] = e.Field
			}
			s.metrics.MeasurementRejected(ctx, fields)
			s.logger.DebugContext(ctx, "measurement rejected", "fields", fields)
		}
		return domain.Measurement{}, err
	}

	m := domain.NewMeasurement(s.newID(), s.now(), parsed)
	s.store.Append(m)

	s.metrics.MeasurementSubmitted(ctx, &ports.SubmittedMetrics{
		FungusType:      m.FungusType,
		PlasticAmountKg: m.PlasticAmount,
		FungusAmountG:   m.FungusAmount,
		DegradationRate: m.DegradationRate,
	})
	s.logger.InfoContext(ctx, "measurement added",
		"id", m.ID,
		"fungus_type", m.FungusType,
		"degradation_rate", m.DegradationRate,
	)
	return m, nil
}

// Remove deletes a record. Unknown ids are not an error.
func (s *Service) Remove(ctx context.Context, id string) {
	found := s.store.Remove(id)
	s.metrics.MeasurementRemoved(ctx, found)
	if found {
		s.logger.InfoContext(ctx, "measurement removed", "id", id)
	}
}

// Records returns the records in submission order.
func (s *Service) Records() []domain.Measurement {
	return s.store.All()
}

// State returns the current dashboard display state.
func (s *Service) State() domain.DashboardState {
	return domain.NewDashboardState(s.store.All())
}
