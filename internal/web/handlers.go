package web

import (
	"net/http"

	"github.com/plasticbusters/plasticbusters/internal/domain"
	"github.com/plasticbusters/plasticbusters/internal/shared/middleware"
	"github.com/plasticbusters/plasticbusters/internal/web/templates"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)

	page := templates.HomePage{Layout: s.layout(sess, domain.RouteHome, "Home")}
	page.HottestSite, page.HasHottestSite = domain.HottestSite(domain.CollectionSites())

	s.render(w, r, http.StatusOK, templates.Home(page))
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	s.render(w, r, http.StatusOK, templates.About(templates.AboutPage{
		Layout: s.layout(sess, domain.RouteAbout, "Sobre"),
	}))
}

func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)

	filter := parseSiteFilter(r.URL.Query())
	sites := filter.Apply(domain.CollectionSites())

	s.render(w, r, http.StatusOK, templates.Map(templates.MapPage{
		Layout:    s.layout(sess, domain.RouteMap, "Mapa"),
		Filter:    filter,
		Sites:     sites,
		SitesJSON: mustJSON(newSiteMarkers(sites)),
	}))
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}
	dark := sess.ToggleTheme()
	s.logger.DebugContext(r.Context(), "theme toggled", "session", sess.ID, "dark", dark)

	back := domain.PathOf(domain.Route(r.FormValue("voltar")))
	if middleware.IsHTMX(r) {
		w.Header().Set("HX-Redirect", back)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}
