package domain

import "testing"

func TestSiteFilter_Apply(t *testing.T) {
	sites := CollectionSites()

	tests := []struct {
		name   string
		filter SiteFilter
		want   int
	}{
		{"all", AllSites, 4},
		{"aquatic only", SiteFilter{Aquatic: true}, 2},
		{"terrestrial only", SiteFilter{Terrestrial: true}, 2},
		{"none", SiteFilter{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(sites)
			if len(got) != tt.want {
				t.Fatalf("expected %d sites, got %d", tt.want, len(got))
			}
			for _, s := range got {
				if !tt.filter.Allows(s) {
					t.Errorf("site %s should have been filtered out", s.Name)
				}
			}
		})
	}
}

func TestSiteFilter_UnknownCategory(t *testing.T) {
	if AllSites.Allows(Site{Category: "orbital"}) {
		t.Error("unknown category must not pass")
	}
}

func TestHottestSite(t *testing.T) {
	s, ok := HottestSite(CollectionSites())
	if !ok {
		t.Fatal("expected a site")
	}
	if s.Name != "Oceano Pacífico" || s.Intensity != 120000 {
		t.Errorf("got %+v", s)
	}

	if _, ok := HottestSite(nil); ok {
		t.Error("expected no site for an empty list")
	}

	tie := []Site{{Name: "first", Intensity: 5}, {Name: "second", Intensity: 5}}
	if s, _ := HottestSite(tie); s.Name != "first" {
		t.Errorf("tie should keep the first site, got %s", s.Name)
	}
}

func TestPathOf(t *testing.T) {
	if got := PathOf(RouteDashboard); got != "/dashboard" {
		t.Errorf("PathOf(dashboard) = %s", got)
	}
	if got := PathOf("nowhere"); got != "/" {
		t.Errorf("PathOf(unknown) = %s", got)
	}
}
