// Package templates renders the site's pages and partials as templ
// components.
package templates

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
)

//go:embed html
var files embed.FS

const (
	pageHome      = "home.html"
	pageAbout     = "about.html"
	pageMap       = "map.html"
	pageDashboard = "dashboard.html"
	pagePlastic   = "plastic.html"
	pageFungus    = "fungus.html"
)

var pages = parsePages(pageHome, pageAbout, pageMap, pageDashboard, pagePlastic, pageFungus)

// parsePages builds one template set per page: the layout, the shared
// partials and the page's "content" block.
func parsePages(names ...string) map[string]*template.Template {
	out := make(map[string]*template.Template, len(names))
	for _, name := range names {
		out[name] = template.Must(template.New("layout.html").Funcs(funcs).ParseFS(files,
			"html/layout.html",
			"html/partials/*.html",
			"html/"+name,
		))
	}
	return out
}

func Home(d HomePage) templ.Component {
	return templ.FromGoHTML(pages[pageHome], d)
}

func About(d AboutPage) templ.Component {
	return templ.FromGoHTML(pages[pageAbout], d)
}

func Map(d MapPage) templ.Component {
	return templ.FromGoHTML(pages[pageMap], d)
}

func Dashboard(d DashboardPage) templ.Component {
	return templ.FromGoHTML(pages[pageDashboard], d)
}

// MeasurementPanelPartial renders only the measurement panel, for HTMX swaps.
func MeasurementPanelPartial(d MeasurementPanel) templ.Component {
	return templ.FromGoHTML(pages[pageDashboard].Lookup("measurement-panel"), d)
}

func PlasticForm(d PlasticPage) templ.Component {
	return templ.FromGoHTML(pages[pagePlastic], d)
}

func FungusForm(d FungusPage) templ.Component {
	return templ.FromGoHTML(pages[pageFungus], d)
}
