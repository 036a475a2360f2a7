package memory

import (
	"slices"
	"sync"

	"github.com/plasticbusters/plasticbusters/internal/domain"
)

// MeasurementStore keeps measurement records in process memory.
type MeasurementStore struct {
	mu      sync.RWMutex
	records []domain.Measurement
}

// NewMeasurementStore returns an empty store.
func NewMeasurementStore() *MeasurementStore {
	return &MeasurementStore{}
}

func (s *MeasurementStore) Append(m domain.Measurement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, m)
}

func (s *MeasurementStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.records, func(m domain.Measurement) bool { return m.ID == id })
	if i < 0 {
		return false
	}
	s.records = slices.Delete(s.records, i, i+1)
	return true
}

func (s *MeasurementStore) All() []domain.Measurement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records)
}

func (s *MeasurementStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
