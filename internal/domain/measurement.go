package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the calendar format used for measurement dates (pt-BR).
const DateLayout = "02/01/2006"

// MaxDegradationRate is the upper bound of the degradation percentage and
// the fixed scale of the measurement chart.
const MaxDegradationRate = 100.0

// MaxAmount bounds the plastic (kg) and fungus (g) amounts of one record so
// that session totals stay finite.
const MaxAmount = 1e9

// Form field names, as posted by the measurement form.
const (
	FieldPlasticAmount   = "plasticAmount"
	FieldFungusAmount    = "fungusAmount"
	FieldFungusType      = "fungusType"
	FieldDegradationRate = "degradationRate"
)

// Measurement is one user-submitted degradation observation.
type Measurement struct {
	ID              string
	Date            string
	PlasticAmount   float64 // kg
	FungusAmount    float64 // g
	FungusType      string
	DegradationRate float64 // percent, 0-100
}

// MeasurementInput holds the raw form values as typed by the user.
type MeasurementInput struct {
	PlasticAmount   string
	FungusAmount    string
	FungusType      string
	DegradationRate string
}

// ValidationError describes why a single form field was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationErrors collects every rejected field of one submission.
type ValidationErrors []*ValidationError

func (ve ValidationErrors) Error() string {
	parts := make([]string, len(ve))
	for i, e := range ve {
		parts[i] = e.Error()
	}
	return "invalid measurement: " + strings.Join(parts, "; ")
}

// Field returns the error for the named field, or nil.
func (ve ValidationErrors) Field(name string) *ValidationError {
	for _, e := range ve {
		if e.Field == name {
			return e
		}
	}
	return nil
}

// ParsedMeasurement is a validated input waiting for an ID and a date.
type ParsedMeasurement struct {
	PlasticAmount   float64
	FungusAmount    float64
	FungusType      string
	DegradationRate float64
}

// ParseMeasurementInput validates the raw form values. On failure it
// returns ValidationErrors listing every bad field.
func ParseMeasurementInput(in MeasurementInput) (ParsedMeasurement, error) {
	var (
		p    ParsedMeasurement
		errs ValidationErrors
	)

	if v, err := parseAmount(FieldPlasticAmount, in.PlasticAmount); err != nil {
		errs = append(errs, err)
	} else {
		p.PlasticAmount = v
	}

	if v, err := parseAmount(FieldFungusAmount, in.FungusAmount); err != nil {
		errs = append(errs, err)
	} else {
		p.FungusAmount = v
	}

	p.FungusType = strings.TrimSpace(in.FungusType)
	if p.FungusType == "" {
		errs = append(errs, &ValidationError{Field: FieldFungusType, Reason: "required"})
	}

	if v, err := parseDecimal(FieldDegradationRate, in.DegradationRate); err != nil {
		errs = append(errs, err)
	} else if v < 0 || v > MaxDegradationRate {
		errs = append(errs, &ValidationError{Field: FieldDegradationRate, Reason: "out of range"})
	} else {
		p.DegradationRate = v
	}

	if len(errs) > 0 {
		return ParsedMeasurement{}, errs
	}
	return p, nil
}

// NewMeasurement stamps a parsed input with its identity and creation date.
func NewMeasurement(id string, now time.Time, p ParsedMeasurement) Measurement {
	return Measurement{
		ID:              id,
		Date:            now.Format(DateLayout),
		PlasticAmount:   p.PlasticAmount,
		FungusAmount:    p.FungusAmount,
		FungusType:      p.FungusType,
		DegradationRate: p.DegradationRate,
	}
}

func parseAmount(field, raw string) (float64, *ValidationError) {
	v, err := parseDecimal(field, raw)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, &ValidationError{Field: field, Reason: "must not be negative"}
	}
	if v > MaxAmount {
		return 0, &ValidationError{Field: field, Reason: "out of range"}
	}
	return v, nil
}

// parseDecimal accepts "10.5" and the pt-BR "10,5".
func parseDecimal(field, raw string) (float64, *ValidationError) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &ValidationError{Field: field, Reason: "required"}
	}
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Reason: "not a number"}
	}
	return v, nil
}
