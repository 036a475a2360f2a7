package ports

import "github.com/plasticbusters/plasticbusters/internal/domain"

// MeasurementStore holds the ordered measurement records of one session.
type MeasurementStore interface {
	// Append adds a record at the end.
	Append(m domain.Measurement)
	// Remove deletes the record with the given id. Absent ids are a no-op
	// and report false.
	Remove(id string) bool
	// All returns a snapshot in insertion order. Callers may not rely on
	// later changes being reflected in it.
	All() []domain.Measurement
	Len() int
}
