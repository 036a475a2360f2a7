package web

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/plasticbusters/plasticbusters/internal/domain"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func multipartRequest(t *testing.T, path string, fields map[string]string, image []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if image != nil {
		fw, err := mw.CreateFormFile(imageField, "amostra.png")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := fw.Write(image); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestSavePlasticSheet(t *testing.T) {
	b := newBrowser(t)

	rec := b.do(multipartRequest(t, "/plastico", map[string]string{
		"scientific_name":     "  Polipropileno ",
		"common_name":         "PP",
		"molecular_structure": "(C3H6)n",
		"formula":             "C3H6",
		"application":         "Tampas",
		"deterioration_time":  "≈ 400 anos",
	}, pngHeader))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"Dados salvos com sucesso!", `value="Polipropileno"`, "data:image/png;base64,"} {
		if !strings.Contains(body, want) {
			t.Errorf("body does not contain %q", want)
		}
	}

	var sheet domain.PlasticSheet
	decodeJSON(t, b.get("/plastico/exportar"), &sheet)
	if sheet.ScientificName != "Polipropileno" || sheet.Formula != "C3H6" {
		t.Errorf("exported sheet = %+v", sheet)
	}
}

func TestSaveFungusSheet_KeepsPreviewWithoutNewImage(t *testing.T) {
	b := newBrowser(t)

	b.do(multipartRequest(t, "/fungos", map[string]string{"scientific_name": "Aspergillus tubingensis"}, pngHeader))
	rec := b.do(multipartRequest(t, "/fungos", map[string]string{"scientific_name": "Pestalotiopsis microspora"}, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "data:image/png;base64,") {
		t.Error("previous preview should be kept")
	}
	if !strings.Contains(body, "Pestalotiopsis microspora") {
		t.Error("sheet not updated")
	}
}

func TestSaveSheet_RejectsNonImage(t *testing.T) {
	b := newBrowser(t)

	rec := b.do(multipartRequest(t, "/fungos", map[string]string{"scientific_name": "Trocado"}, []byte("just some text")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, errNotImage.Error()) {
		t.Error("error message missing")
	}
	if !strings.Contains(body, `value="Trocado"`) {
		t.Error("typed value should be kept in the form for correction")
	}

	var sheet domain.FungusSheet
	decodeJSON(t, b.get("/fungos/exportar"), &sheet)
	if sheet != domain.DefaultFungusSheet() {
		t.Errorf("a rejected upload must not change the sheet, got %+v", sheet)
	}
}

func TestSavePlasticSheet_RejectedImageKeepsTypedValues(t *testing.T) {
	b := newBrowser(t)

	rec := b.do(multipartRequest(t, "/plastico", map[string]string{
		"common_name": "Isopor",
		"formula":     "(C8H8)n",
	}, []byte("%PDF-1.4 not an image")))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{`value="Isopor"`, `value="(C8H8)n"`} {
		if !strings.Contains(body, want) {
			t.Errorf("body does not contain %q", want)
		}
	}
	if strings.Contains(body, "Dados salvos com sucesso!") {
		t.Error("rejected sheet reported as saved")
	}

	var sheet domain.PlasticSheet
	decodeJSON(t, b.get("/plastico/exportar"), &sheet)
	if sheet != domain.DefaultPlasticSheet() {
		t.Errorf("a rejected upload must not change the sheet, got %+v", sheet)
	}
}
