// Package session keeps the per-browser state of the site in memory.
package session

import (
	"sync"

	"github.com/plasticbusters/plasticbusters/internal/dashboard"
	"github.com/plasticbusters/plasticbusters/internal/domain"
)

// Session is the state owned by one browser. It is created empty and
// dropped when it expires; nothing outlives it.
type Session struct {
	ID        string
	Dashboard *dashboard.Service

	mu             sync.Mutex
	dark           bool
	plastic        domain.PlasticSheet
	fungus         domain.FungusSheet
	plasticPreview string
	fungusPreview  string
}

func newSession(id string, svc *dashboard.Service) *Session {
	return &Session{
		ID:        id,
		Dashboard: svc,
		dark:      true,
		plastic:   domain.DefaultPlasticSheet(),
		fungus:    domain.DefaultFungusSheet(),
	}
}

// View returns the view state for the given route.
func (s *Session) View(route domain.Route) domain.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ViewState{Route: route, Dark: s.dark}
}

// ToggleTheme flips dark mode and returns the new value.
func (s *Session) ToggleTheme() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = !s.dark
	return s.dark
}

// PlasticSheet returns the sheet and its image preview URL, if any.
func (s *Session) PlasticSheet() (domain.PlasticSheet, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plastic, s.plasticPreview
}

// SavePlasticSheet stores the sheet. An empty preview keeps the previous one.
func (s *Session) SavePlasticSheet(sheet domain.PlasticSheet, preview string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plastic = sheet
	if preview != "" {
		s.plasticPreview = preview
	}
}

// FungusSheet returns the sheet and its image preview URL, if any.
func (s *Session) FungusSheet() (domain.FungusSheet, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fungus, s.fungusPreview
}

// SaveFungusSheet stores the sheet. An empty preview keeps the previous one.
func (s *Session) SaveFungusSheet(sheet domain.FungusSheet, preview string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fungus = sheet
	if preview != "" {
		s.fungusPreview = preview
	}
}
