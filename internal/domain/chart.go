package domain

// Bar is one bar of the measurement chart.
type Bar struct {
	Label   string  // fungus type
	Caption string  // measurement date, shown in the tooltip
	Value   float64 // degradation rate
	Height  float64 // Value scaled to [0, 1] against MaxDegradationRate
}

// MeasurementBars maps records to bars one-to-one, keeping store order.
func MeasurementBars(records []Measurement) []Bar {
	bars := make([]Bar, len(records))
	for i, r := range records {
		bars[i] = Bar{
			Label:   r.FungusType,
			Caption: r.Date,
			Value:   r.DegradationRate,
			Height:  r.DegradationRate / MaxDegradationRate,
		}
	}
	return bars
}

// Series is a labelled dataset for the informational charts.
type Series struct {
	Title  string
	Unit   string
	Labels []string
	Values []float64
}

// IsolatesPerYear is the yearly count of fungal isolates in the collection.
func IsolatesPerYear() Series {
	return Series{
		Title:  "Isolados fúngicos por ano",
		Unit:   "isolados",
		Labels: []string{"2019", "2020", "2021", "2022", "2023", "2024"},
		Values: []float64{12, 19, 27, 34, 48, 61},
	}
}

// CollectionByPlastic is the collected tonnage per plastic type.
func CollectionByPlastic() Series {
	return Series{
		Title:  "Coleta por tipo de plástico",
		Unit:   "t",
		Labels: []string{"PET", "PEAD", "PVC", "PEBD", "PP", "PS"},
		Values: []float64{320, 210, 95, 180, 150, 70},
	}
}
