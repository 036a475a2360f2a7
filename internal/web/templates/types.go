package templates

import "github.com/plasticbusters/plasticbusters/internal/domain"

// Layout is shared by every full page.
type Layout struct {
	View  domain.ViewState
	Nav   []domain.NavItem
	Title string
	Year  int
}

type HomePage struct {
	Layout
	HottestSite    domain.Site
	HasHottestSite bool
}

type AboutPage struct {
	Layout
}

type MapPage struct {
	Layout
	Filter    domain.SiteFilter
	Sites     []domain.Site
	SitesJSON string
}

type DashboardPage struct {
	Layout
	IsolatesEndpoint   string
	CollectionEndpoint string
	Panel              MeasurementPanel
}

// MeasurementPanel is the HTMX-swappable part of the dashboard: the
// "add measurement" form plus either the empty placeholder or the
// populated chart, tiles and table.
type MeasurementPanel struct {
	Input     domain.MeasurementInput
	Errors    map[string]string
	Populated bool
	Summary   domain.MeasurementSummary
	Records   []domain.Measurement
	ChartJSON string
}

type PlasticPage struct {
	Layout
	Sheet   domain.PlasticSheet
	Preview string
	Saved   bool
	Error   string
}

type FungusPage struct {
	Layout
	Sheet   domain.FungusSheet
	Preview string
	Saved   bool
	Error   string
}
