package domain

// SiteCategory classifies a collection site.
type SiteCategory string

const (
	Aquatic     SiteCategory = "aquatic"
	Terrestrial SiteCategory = "terrestrial"
)

// Site is a microplastic collection point shown on the map.
type Site struct {
	Name      string
	Latitude  float64
	Longitude float64
	Category  SiteCategory
	Intensity int // collected units
}

// CollectionSites returns the fixed monitoring points.
func CollectionSites() []Site {
	return []Site{
		{Name: "Oceano Pacífico", Latitude: 8.7832, Longitude: -124.5085, Category: Aquatic, Intensity: 120000},
		{Name: "Baía de Guanabara", Latitude: -22.8184, Longitude: -43.1619, Category: Aquatic, Intensity: 48000},
		{Name: "Aterro de Gramacho", Latitude: -22.7420, Longitude: -43.2600, Category: Terrestrial, Intensity: 65000},
		{Name: "Lixão da Estrutural", Latitude: -15.7838, Longitude: -47.9948, Category: Terrestrial, Intensity: 31000},
	}
}

// SiteFilter mirrors the category toggle switches of the map.
type SiteFilter struct {
	Aquatic     bool
	Terrestrial bool
}

// AllSites shows every category.
var AllSites = SiteFilter{Aquatic: true, Terrestrial: true}

// Allows reports whether a site passes the toggles.
func (f SiteFilter) Allows(s Site) bool {
	switch s.Category {
	case Aquatic:
		return f.Aquatic
	case Terrestrial:
		return f.Terrestrial
	default:
		return false
	}
}

// Apply returns the sites that pass the filter, in input order.
func (f SiteFilter) Apply(sites []Site) []Site {
	out := make([]Site, 0, len(sites))
	for _, s := range sites {
		if f.Allows(s) {
			out = append(out, s)
		}
	}
	return out
}

// HottestSite returns the site with the highest intensity. ok is false for
// an empty list. Ties keep the first site.
func HottestSite(sites []Site) (Site, bool) {
	if len(sites) == 0 {
		return Site{}, false
	}
	best := sites[0]
	for _, s := range sites[1:] {
		if s.Intensity > best.Intensity {
			best = s
		}
	}
	return best, true
}
