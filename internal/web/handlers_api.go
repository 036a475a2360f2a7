package web

import (
	"net/http"

	"github.com/plasticbusters/plasticbusters/internal/domain"
)

func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)

	switch st := sess.Dashboard.State().(type) {
	case domain.PopulatedDashboard:
		s.writeJSON(w, r, map[string]any{
			"state":               "populated",
			"count":               st.Summary.Count,
			"total_plastic_kg":    st.Summary.TotalPlastic,
			"total_fungus_g":      st.Summary.TotalFungus,
			"average_degradation": st.Summary.AverageDegradation,
		})
	default:
		s.writeJSON(w, r, map[string]any{
			"state": "empty",
			"count": 0,
		})
	}
}

func (s *Server) handleAPIChartIsolates(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, newSeriesChart(domain.IsolatesPerYear()))
}

func (s *Server) handleAPIChartCollection(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, newSeriesChart(domain.CollectionByPlastic()))
}

func (s *Server) handleAPIChartMeasurements(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	s.writeJSON(w, r, newMeasurementChart(domain.MeasurementBars(sess.Dashboard.Records())))
}

func (s *Server) handleAPIMapSites(w http.ResponseWriter, r *http.Request) {
	filter := parseSiteFilter(r.URL.Query())
	s.writeJSON(w, r, map[string]any{
		"sites": newSiteMarkers(filter.Apply(domain.CollectionSites())),
	})
}
