package web

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/plasticbusters/plasticbusters/internal/domain"
	"github.com/plasticbusters/plasticbusters/internal/session"
	"github.com/plasticbusters/plasticbusters/internal/web/templates"
)

// measurementChart is the bar dataset consumed by the chart script.
type measurementChart struct {
	Labels   []string  `json:"labels"`
	Values   []float64 `json:"values"`
	Heights  []float64 `json:"heights"`
	Captions []string  `json:"captions"`
}

func newMeasurementChart(bars []domain.Bar) measurementChart {
	c := measurementChart{
		Labels:   make([]string, len(bars)),
		Values:   make([]float64, len(bars)),
		Heights:  make([]float64, len(bars)),
		Captions: make([]string, len(bars)),
	}
	for i, b := range bars {
		c.Labels[i] = b.Label
		c.Values[i] = b.Value
		c.Heights[i] = b.Height
		c.Captions[i] = b.Caption
	}
	return c
}

type seriesChart struct {
	Title  string    `json:"title"`
	Unit   string    `json:"unit"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

func newSeriesChart(s domain.Series) seriesChart {
	return seriesChart{Title: s.Title, Unit: s.Unit, Labels: s.Labels, Values: s.Values}
}

// siteMarker is one map marker for the map script.
type siteMarker struct {
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Category  string  `json:"category"`
	Intensity int     `json:"intensity"`
}

func newSiteMarkers(sites []domain.Site) []siteMarker {
	markers := make([]siteMarker, len(sites))
	for i, s := range sites {
		markers[i] = siteMarker{
			Name:      s.Name,
			Lat:       s.Latitude,
			Lng:       s.Longitude,
			Category:  string(s.Category),
			Intensity: s.Intensity,
		}
	}
	return markers
}

// parseSiteFilter reads the map toggles. Without any toggle parameter every
// category is shown; once the form was submitted ("filtro") an unchecked
// box hides its category.
func parseSiteFilter(q url.Values) domain.SiteFilter {
	if !q.Has("filtro") && !q.Has("aquatic") && !q.Has("terrestrial") {
		return domain.AllSites
	}
	return domain.SiteFilter{
		Aquatic:     q.Get("aquatic") != "" && q.Get("aquatic") != "off",
		Terrestrial: q.Get("terrestrial") != "" && q.Get("terrestrial") != "off",
	}
}

// buildMeasurementPanel maps the dashboard state to the panel view model.
func buildMeasurementPanel(state domain.DashboardState, in domain.MeasurementInput, errs map[string]string) templates.MeasurementPanel {
	panel := templates.MeasurementPanel{Input: in, Errors: errs}
	if st, ok := state.(domain.PopulatedDashboard); ok {
		panel.Populated = true
		panel.Summary = st.Summary
		panel.Records = st.Records
		panel.ChartJSON = mustJSON(newMeasurementChart(st.Bars))
	}
	return panel
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

// writeJSON encodes v before writing anything, so an encoding failure
// becomes a 500 instead of an empty 200.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "encode json response", "path", r.URL.Path, "error", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(append(b, '\n'))
}

func (s *Server) layout(sess *session.Session, route domain.Route, title string) templates.Layout {
	return templates.Layout{
		View:  sess.View(route),
		Nav:   domain.Navigation(),
		Title: title,
		Year:  s.now().Year(),
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		s.logger.ErrorContext(r.Context(), "render failed", "path", r.URL.Path, "error", err)
	}
}
