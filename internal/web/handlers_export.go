package web

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/plasticbusters/plasticbusters/internal/domain"
)

type exportMeasurement struct {
	ID              string  `json:"id"`
	Date            string  `json:"date"`
	PlasticAmountKg float64 `json:"plastic_amount_kg"`
	FungusAmountG   float64 `json:"fungus_amount_g"`
	FungusType      string  `json:"fungus_type"`
	DegradationRate float64 `json:"degradation_rate"`
}

func (s *Server) handleAPIExportMeasurements(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}

	records := sess.Dashboard.Records()
	exportData := make([]exportMeasurement, 0, len(records))
	for _, m := range records {
		exportData = append(exportData, exportMeasurement{
			ID:              m.ID,
			Date:            m.Date,
			PlasticAmountKg: m.PlasticAmount,
			FungusAmountG:   m.FungusAmount,
			FungusType:      m.FungusType,
			DegradationRate: m.DegradationRate,
		})
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=medicoes.csv")

		writer := csv.NewWriter(w)
		defer writer.Flush()

		header := []string{
			"id", "date", "plastic_amount_kg", "fungus_amount_g", "fungus_type", "degradation_rate",
		}
		_ = writer.Write(header)

		for _, em := range exportData {
			row := []string{
				em.ID, em.Date,
				strconv.FormatFloat(em.PlasticAmountKg, 'f', -1, 64),
				strconv.FormatFloat(em.FungusAmountG, 'f', -1, 64),
				em.FungusType,
				strconv.FormatFloat(em.DegradationRate, 'f', -1, 64),
			}
			_ = writer.Write(row)
		}

	case "json":
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", "attachment; filename=medicoes.json")

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		_ = encoder.Encode(exportData)

	default:
		http.Error(w, "Unsupported format (use csv or json)", http.StatusBadRequest)
	}
}

func (s *Server) handleExportPlasticSheet(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	sheet, _ := sess.PlasticSheet()
	writeSheet(w, "ficha-plastico.json", sheet)
}

func (s *Server) handleExportFungusSheet(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.Get(w, r)
	sheet, _ := sess.FungusSheet()
	writeSheet(w, "ficha-fungo.json", sheet)
}

func writeSheet[T domain.PlasticSheet | domain.FungusSheet](w http.ResponseWriter, filename string, sheet T) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(sheet)
}
