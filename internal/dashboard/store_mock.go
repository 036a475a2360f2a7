package dashboard

import "github.com/plasticbusters/plasticbusters/internal/domain"

// MockStore is a mock implementation of ports.MeasurementStore for testing.
type MockStore struct {
	AppendFunc func(m domain.Measurement)
	RemoveFunc func(id string) bool
	AllFunc    func() []domain.Measurement
	LenFunc    func() int
}

func (m *MockStore) Append(rec domain.Measurement) {
	if m.AppendFunc != nil {
		m.AppendFunc(rec)
	}
}

func (m *MockStore) Remove(id string) bool {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(id)
	}
	return false
}

func (m *MockStore) All() []domain.Measurement {
	if m.AllFunc != nil {
		return m.AllFunc()
	}
	return []domain.Measurement{}
}

func (m *MockStore) Len() int {
	if m.LenFunc != nil {
		return m.LenFunc()
	}
	return 0
}
