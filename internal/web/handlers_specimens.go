package web

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/plasticbusters/plasticbusters/internal/domain"
	"github.com/plasticbusters/plasticbusters/internal/web/templates"
)

const imageField = "imagem"

var errNotImage = errors.New("o arquivo enviado não é uma imagem")

func (s *Server) handlePlasticForm(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	sheet, preview := sess.PlasticSheet()
	s.render(w, r, http.StatusOK, templates.PlasticForm(templates.PlasticPage{
		Layout:  s.layout(sess, domain.RoutePlastic, "Plástico"),
		Sheet:   sheet,
		Preview: preview,
	}))
}

func (s *Server) handleFungusForm(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	sheet, preview := sess.FungusSheet()
	s.render(w, r, http.StatusOK, templates.FungusForm(templates.FungusPage{
		Layout:  s.layout(sess, domain.RouteFungus, "Fungos"),
		Sheet:   sheet,
		Preview: preview,
	}))
}

func (s *Server) handleSavePlasticSheet(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	layout := s.layout(sess, domain.RoutePlastic, "Plástico")

	stored, current := sess.PlasticSheet()
	if status, err := s.parseSheetForm(w, r); err != nil {
		s.render(w, r, status, templates.PlasticForm(templates.PlasticPage{
			Layout: layout, Sheet: stored, Preview: current, Error: err.Error(),
		}))
		return
	}

	sheet := domain.PlasticSheet{
		ScientificName:     formText(r, "scientific_name"),
		CommonName:         formText(r, "common_name"),
		MolecularStructure: formText(r, "molecular_structure"),
		Formula:            formText(r, "formula"),
		Application:        formText(r, "application"),
		DeteriorationTime:  formText(r, "deterioration_time"),
	}
	preview, err := imagePreview(r)
	if err != nil {
		// Unsaved: the typed values come back for correction.
		s.render(w, r, http.StatusBadRequest, templates.PlasticForm(templates.PlasticPage{
			Layout: layout, Sheet: sheet, Preview: current, Error: err.Error(),
		}))
		return
	}

	sess.SavePlasticSheet(sheet, preview)
	s.logger.InfoContext(r.Context(), "plastic sheet saved", "session", sess.ID, "image", preview != "")

	sheet, current = sess.PlasticSheet()
	s.render(w, r, http.StatusOK, templates.PlasticForm(templates.PlasticPage{
		Layout: layout, Sheet: sheet, Preview: current, Saved: true,
	}))
}

func (s *Server) handleSaveFungusSheet(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	layout := s.layout(sess, domain.RouteFungus, "Fungos")

	stored, current := sess.FungusSheet()
	if status, err := s.parseSheetForm(w, r); err != nil {
		s.render(w, r, status, templates.FungusForm(templates.FungusPage{
			Layout: layout, Sheet: stored, Preview: current, Error: err.Error(),
		}))
		return
	}

	sheet := domain.FungusSheet{
		ScientificName: formText(r, "scientific_name"),
		Taxonomy:       formText(r, "taxonomy"),
		Enzyme:         formText(r, "enzyme"),
		Degradation:    formText(r, "degradation"),
		Maturation:     formText(r, "maturation"),
	}
	preview, err := imagePreview(r)
	if err != nil {
		s.render(w, r, http.StatusBadRequest, templates.FungusForm(templates.FungusPage{
			Layout: layout, Sheet: sheet, Preview: current, Error: err.Error(),
		}))
		return
	}

	sess.SaveFungusSheet(sheet, preview)
	s.logger.InfoContext(r.Context(), "fungus sheet saved", "session", sess.ID, "image", preview != "")

	sheet, current = sess.FungusSheet()
	s.render(w, r, http.StatusOK, templates.FungusForm(templates.FungusPage{
		Layout: layout, Sheet: sheet, Preview: current, Saved: true,
	}))
}

// parseSheetForm parses a sheet post, multipart or urlencoded, under the
// upload size cap. The returned status is meant for the error page.
func (s *Server) parseSheetForm(w http.ResponseWriter, r *http.Request) (int, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)
	if err := r.ParseMultipartForm(s.maxUpload); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return http.StatusRequestEntityTooLarge, fmt.Errorf("a imagem excede o limite de %d bytes", tooLarge.Limit)
		}
		return http.StatusBadRequest, errors.New("dados do formulário inválidos")
	}
	return http.StatusOK, nil
}

// imagePreview returns a data: URL for the uploaded image, or "" when no
// file was sent. Nothing is written to disk.
func imagePreview(r *http.Request) (string, error) {
	file, _, err := r.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return "", nil
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", errNotImage
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func formText(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}
