package templates

import (
	"html/template"

	"github.com/plasticbusters/plasticbusters/internal/domain"
	"github.com/plasticbusters/plasticbusters/internal/util"
)

var funcs = template.FuncMap{
	"formatKg":      util.FormatKg,
	"formatGrams":   util.FormatGrams,
	"formatRate":    util.FormatRate,
	"formatCount":   util.FormatCount,
	"categoryLabel": categoryLabel,
	"fieldError":    fieldError,
	"previewURL":    previewURL,
	"isActive":      isActive,
}

func categoryLabel(c domain.SiteCategory) string {
	switch c {
	case domain.Aquatic:
		return "Aquático"
	case domain.Terrestrial:
		return "Terrestre"
	default:
		return string(c)
	}
}

var fieldMessages = map[string]string{
	"required":             "Campo obrigatório",
	"not a number":         "Informe um número válido",
	"must not be negative": "O valor não pode ser negativo",
	"out of range":         "Informe um valor entre 0 e 100",
}

// amountOutOfRange replaces the generic range message for the amount fields.
const amountOutOfRange = "Valor acima do limite de 1.000.000.000"

// FieldMessages turns validation errors into form messages keyed by field.
func FieldMessages(errs domain.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		msg, ok := fieldMessages[e.Reason]
		if !ok {
			msg = e.Reason
		}
		if e.Reason == "out of range" && e.Field != domain.FieldDegradationRate {
			msg = amountOutOfRange
		}
		out[e.Field] = msg
	}
	return out
}

func fieldError(errs map[string]string, field string) string {
	return errs[field]
}

// previewURL marks a data: URL built by the server from an uploaded image
// as safe for an img src.
func previewURL(s string) template.URL {
	return template.URL(s)
}

func isActive(view domain.ViewState, r domain.Route) bool {
	return view.Route == r
}
