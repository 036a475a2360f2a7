package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/plasticbusters/plasticbusters/internal/adapters/memory"
	"github.com/plasticbusters/plasticbusters/internal/domain"
	"github.com/plasticbusters/plasticbusters/internal/ports"
)

type recordingExporter struct {
	submitted int
	rejected  [][]string
	removed   []bool
}

func (e *recordingExporter) MeasurementSubmitted(ctx context.Context, m *ports.SubmittedMetrics) {
	e.submitted++
}

func (e *recordingExporter) MeasurementRejected(ctx context.Context, fields []string) {
	e.rejected = append(e.rejected, fields)
}

func (e *recordingExporter) MeasurementRemoved(ctx context.Context, found bool) {
	e.removed = append(e.removed, found)
}

func (e *recordingExporter) Close(ctx context.Context) error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("m-%d", n)
	}
}

func newTestService(t *testing.T) (*Service, *recordingExporter) {
	t.Helper()
	exp := &recordingExporter{}
	fixed := time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)
	s := NewService(memory.NewMeasurementStore(), exp, testLogger(),
		WithClock(func() time.Time { return fixed }),
		WithIDGenerator(sequentialIDs()),
	)
	return s, exp
}

func input(rate string) domain.MeasurementInput {
	return domain.MeasurementInput{
		PlasticAmount:   "1",
		FungusAmount:    "1",
		FungusType:      "Aspergillus",
		DegradationRate: rate,
	}
}

func summary(t *testing.T, s *Service) domain.MeasurementSummary {
	t.Helper()
	state, ok := s.State().(domain.PopulatedDashboard)
	if !ok {
		t.Fatalf("expected populated dashboard, got %T", s.State())
	}
	return state.Summary
}

func TestSubmit_RoundTrip(t *testing.T) {
	s, exp := newTestService(t)
	ctx := context.Background()

	if _, err := s.Submit(ctx, input("10")); err != nil {
		t.Fatalf("seed submit: %v", err)
	}
	before := summary(t, s).TotalPlastic

	m, err := s.Submit(ctx, domain.MeasurementInput{
		PlasticAmount:   "10.5",
		FungusAmount:    "3.2",
		FungusType:      "Aspergillus",
		DegradationRate: "45.0",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.PlasticAmount != 10.5 || m.FungusAmount != 3.2 || m.FungusType != "Aspergillus" || m.DegradationRate != 45 {
		t.Errorf("unexpected record: %+v", m)
	}
	if m.ID != "m-2" {
		t.Errorf("ID = %q, want m-2", m.ID)
	}
	if m.Date != "20/05/2024" {
		t.Errorf("Date = %q, want 20/05/2024", m.Date)
	}
	if got := len(s.Records()); got != 2 {
		t.Errorf("expected 2 records, got %d", got)
	}
	if delta := summary(t, s).TotalPlastic - before; math.Abs(delta-10.5) > 1e-9 {
		t.Errorf("TotalPlastic increased by %v, want 10.5", delta)
	}
	if exp.submitted != 2 {
		t.Errorf("expected 2 exported submissions, got %d", exp.submitted)
	}
}

func TestSubmit_InvalidLeavesStoreUnchanged(t *testing.T) {
	appended := 0
	exp := &recordingExporter{}
	s := NewService(&MockStore{AppendFunc: func(domain.Measurement) { appended++ }}, exp, testLogger())

	tests := []struct {
		name  string
		in    domain.MeasurementInput
		field string
	}{
		{"rate above range", input("100.1"), domain.FieldDegradationRate},
		{"rate below range", input("-1"), domain.FieldDegradationRate},
		{"non-numeric plastic", domain.MeasurementInput{PlasticAmount: "x", FungusAmount: "1", FungusType: "A", DegradationRate: "1"}, domain.FieldPlasticAmount},
		{"missing type", domain.MeasurementInput{PlasticAmount: "1", FungusAmount: "1", DegradationRate: "1"}, domain.FieldFungusType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Submit(context.Background(), tt.in)
			var verrs domain.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			if verrs.Field(tt.field) == nil {
				t.Errorf("expected error on %s, got %v", tt.field, verrs)
			}
		})
	}

	if appended != 0 {
		t.Errorf("store received %d appends on invalid input", appended)
	}
	if len(exp.rejected) != len(tests) {
		t.Errorf("expected %d rejections exported, got %d", len(tests), len(exp.rejected))
	}
}

func TestSubmit_RateBoundaryAccepted(t *testing.T) {
	s, _ := newTestService(t)
	if _, err := s.Submit(context.Background(), input("100")); err != nil {
		t.Errorf("rate 100 should be accepted: %v", err)
	}
}

func TestScenario_AverageAfterRemoval(t *testing.T) {
	s, exp := newTestService(t)
	ctx := context.Background()

	if _, ok := s.State().(domain.EmptyDashboard); !ok {
		t.Fatalf("new service should start empty, got %T", s.State())
	}

	var middle domain.Measurement
	for _, rate := range []string{"20", "40", "60"} {
		m, err := s.Submit(ctx, input(rate))
		if err != nil {
			t.Fatalf("submit %s: %v", rate, err)
		}
		if rate == "40" {
			middle = m
		}
	}

	sum := summary(t, s)
	if sum.Count != 3 || math.Abs(sum.AverageDegradation-40) > 1e-9 {
		t.Errorf("after 3 submits: count=%d avg=%v, want 3 and 40", sum.Count, sum.AverageDegradation)
	}

	s.Remove(ctx, middle.ID)
	sum = summary(t, s)
	if sum.Count != 2 || math.Abs(sum.AverageDegradation-40) > 1e-9 {
		t.Errorf("after removal: count=%d avg=%v, want 2 and 40", sum.Count, sum.AverageDegradation)
	}

	s.Remove(ctx, middle.ID)
	if got := len(s.Records()); got != 2 {
		t.Errorf("second removal changed the store: %d records", got)
	}
	if len(exp.removed) != 2 || !exp.removed[0] || exp.removed[1] {
		t.Errorf("unexpected removal metrics: %v", exp.removed)
	}
}

func TestState_BackToEmpty(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	m, err := s.Submit(ctx, input("10"))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, ok := s.State().(domain.PopulatedDashboard); !ok {
		t.Fatalf("expected populated after first submit")
	}

	s.Remove(ctx, m.ID)
	if _, ok := s.State().(domain.EmptyDashboard); !ok {
		t.Errorf("expected empty after removing every record, got %T", s.State())
	}
}

func TestSubmit_GeneratesUniqueIDs(t *testing.T) {
	s := NewService(memory.NewMeasurementStore(), &recordingExporter{}, testLogger())
	seen := map[string]bool{}
	for i := 0; i < 25; i++ {
		m, err := s.Submit(context.Background(), input("5"))
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		if seen[m.ID] {
			t.Fatalf("duplicate id %s", m.ID)
		}
		seen[m.ID] = true
	}
}
