package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func validForm() url.Values {
	return url.Values{
		"plasticAmount":   {"10.5"},
		"fungusAmount":    {"3.2"},
		"fungusType":      {"Aspergillus"},
		"degradationRate": {"45.0"},
	}
}

func TestSubmitMeasurement_HTMX(t *testing.T) {
	b := newBrowser(t)

	rec := b.postForm("/dashboard/medicoes", validForm(), true)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("htmx response should be the panel partial only")
	}
	for _, want := range []string{`id="measurement-panel"`, "Aspergillus", "10,50 kg", "3,20 g", "45,0%", "20/05/2024"} {
		if !strings.Contains(body, want) {
			t.Errorf("panel does not contain %q", want)
		}
	}
	if strings.Contains(body, "Nenhuma medição registrada ainda.") {
		t.Error("empty placeholder shown for a populated dashboard")
	}
}

func TestSubmitMeasurement_RedirectsWithoutHTMX(t *testing.T) {
	b := newBrowser(t)

	rec := b.postForm("/dashboard/medicoes", validForm(), false)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q", loc)
	}

	body := b.get("/dashboard").Body.String()
	if !strings.Contains(body, "Aspergillus") {
		t.Error("dashboard does not list the new measurement")
	}
}

func TestSubmitMeasurement_Invalid(t *testing.T) {
	form := validForm()
	form.Set("plasticAmount", "dez")
	form.Set("degradationRate", "150")

	t.Run("full page", func(t *testing.T) {
		b := newBrowser(t)
		rec := b.postForm("/dashboard/medicoes", form, false)
		if rec.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", rec.Code)
		}
		body := rec.Body.String()
		for _, want := range []string{"Informe um número válido", "Informe um valor entre 0 e 100", `value="dez"`} {
			if !strings.Contains(body, want) {
				t.Errorf("body does not contain %q", want)
			}
		}
	})

	t.Run("htmx", func(t *testing.T) {
		b := newBrowser(t)
		rec := b.postForm("/dashboard/medicoes", form, true)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 so htmx swaps, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Nenhuma medição registrada ainda.") {
			t.Error("a rejected submission must leave the dashboard empty")
		}
	})
}

func TestRemoveMeasurement(t *testing.T) {
	b := newBrowser(t)
	b.postForm("/dashboard/medicoes", validForm(), false)

	second := validForm()
	second.Set("fungusType", "Pleurotus")
	b.postForm("/dashboard/medicoes", second, false)

	req := httptest.NewRequest(http.MethodDelete, "/dashboard/medicoes/m-1", nil)
	req.Header.Set("HX-Request", "true")
	rec := b.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "Aspergillus") {
		t.Error("removed measurement still listed")
	}
	if !strings.Contains(body, "Pleurotus") {
		t.Error("remaining measurement missing")
	}

	// Non-JS fallback, and removing the last one returns to the empty state.
	rec = b.postForm("/dashboard/medicoes/m-2/remover", url.Values{}, false)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if body := b.get("/dashboard").Body.String(); !strings.Contains(body, "Nenhuma medição registrada ainda.") {
		t.Error("dashboard should be empty again")
	}
}

func TestRemoveMeasurement_UnknownID(t *testing.T) {
	b := newBrowser(t)
	b.postForm("/dashboard/medicoes", validForm(), false)

	req := httptest.NewRequest(http.MethodDelete, "/dashboard/medicoes/nope", nil)
	rec := b.do(req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Aspergillus") {
		t.Error("unknown id must not touch existing records")
	}
}
