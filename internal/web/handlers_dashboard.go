package web

import (
	"errors"
	"net/http"

	"github.com/a-h/templ"

	"github.com/plasticbusters/plasticbusters/internal/domain"
	"github.com/plasticbusters/plasticbusters/internal/shared/middleware"
	"github.com/plasticbusters/plasticbusters/internal/web/templates"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	panel := buildMeasurementPanel(sess.Dashboard.State(), domain.MeasurementInput{}, nil)
	s.render(w, r, http.StatusOK, s.dashboardPage(s.layout(sess, domain.RouteDashboard, "Dashboard"), panel))
}

func (s *Server) dashboardPage(layout templates.Layout, panel templates.MeasurementPanel) templ.Component {
	return templates.Dashboard(templates.DashboardPage{
		Layout:             layout,
		IsolatesEndpoint:   "/api/charts/isolates",
		CollectionEndpoint: "/api/charts/collection",
		Panel:              panel,
	})
}

func (s *Server) handleSubmitMeasurement(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := s.sessions.Get(w, r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	in := domain.MeasurementInput{
		PlasticAmount:   r.FormValue(domain.FieldPlasticAmount),
		FungusAmount:    r.FormValue(domain.FieldFungusAmount),
		FungusType:      r.FormValue(domain.FieldFungusType),
		DegradationRate: r.FormValue(domain.FieldDegradationRate),
	}

	_, err := sess.Dashboard.Submit(ctx, in)
	var verrs domain.ValidationErrors
	switch {
	case err == nil:
		if !middleware.IsHTMX(r) {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		panel := buildMeasurementPanel(sess.Dashboard.State(), domain.MeasurementInput{}, nil)
		s.render(w, r, http.StatusOK, templates.MeasurementPanelPartial(panel))

	case errors.As(err, &verrs):
		// Keep what the user typed so it can be corrected.
		panel := buildMeasurementPanel(sess.Dashboard.State(), in, templates.FieldMessages(verrs))
		if middleware.IsHTMX(r) {
			s.render(w, r, http.StatusOK, templates.MeasurementPanelPartial(panel))
			return
		}
		s.render(w, r, http.StatusUnprocessableEntity,
			s.dashboardPage(s.layout(sess, domain.RouteDashboard, "Dashboard"), panel))

	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleRemoveMeasurement(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	sess.Dashboard.Remove(r.Context(), r.PathValue("id"))

	if r.Method == http.MethodPost && !middleware.IsHTMX(r) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	panel := buildMeasurementPanel(sess.Dashboard.State(), domain.MeasurementInput{}, nil)
	s.render(w, r, http.StatusOK, templates.MeasurementPanelPartial(panel))
}
