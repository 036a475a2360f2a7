package domain

// Route identifies a top-level section of the site.
type Route string

const (
	RouteHome      Route = "home"
	RouteAbout     Route = "about"
	RouteMap       Route = "map"
	RouteDashboard Route = "dashboard"
	RoutePlastic   Route = "plastico"
	RouteFungus    Route = "fungos"
)

// NavItem is one entry of the header navigation.
type NavItem struct {
	Route Route
	Label string
	Path  string
}

// Navigation lists the sections in header order.
func Navigation() []NavItem {
	return []NavItem{
		{Route: RouteHome, Label: "Home", Path: "/"},
		{Route: RouteAbout, Label: "Sobre", Path: "/sobre"},
		{Route: RouteMap, Label: "Mapa", Path: "/mapa"},
		{Route: RouteDashboard, Label: "Dashboard", Path: "/dashboard"},
		{Route: RoutePlastic, Label: "Plástico", Path: "/plastico"},
		{Route: RouteFungus, Label: "Fungos", Path: "/fungos"},
	}
}

// PathOf returns the URL path of a route, "/" for unknown routes.
func PathOf(r Route) string {
	for _, item := range Navigation() {
		if item.Route == r {
			return item.Path
		}
	}
	return "/"
}

// ViewState is the per-request snapshot of the visible section and theme.
type ViewState struct {
	Route Route
	Dark  bool
}
