package domain

// MeasurementSummary holds the four statistic tiles of a populated dashboard.
type MeasurementSummary struct {
	Count              int
	TotalPlastic       float64
	TotalFungus        float64
	AverageDegradation float64
}

// Count returns the number of records.
func Count(records []Measurement) int {
	return len(records)
}

// TotalPlastic sums the plastic mass in kg. Zero for no records.
func TotalPlastic(records []Measurement) float64 {
	var total float64
	for _, r := range records {
		total += r.PlasticAmount
	}
	return total
}

// TotalFungus sums the fungus mass in g. Zero for no records.
func TotalFungus(records []Measurement) float64 {
	var total float64
	for _, r := range records {
		total += r.FungusAmount
	}
	return total
}

// AverageDegradation returns the mean degradation rate. ok is false when
// records is empty; the average is undefined there and is never coerced to 0.
func AverageDegradation(records []Measurement) (avg float64, ok bool) {
	if len(records) == 0 {
		return 0, false
	}
	var sum float64
	for _, r := range records {
		sum += r.DegradationRate
	}
	return sum / float64(len(records)), true
}

// DashboardState is either EmptyDashboard or PopulatedDashboard.
type DashboardState interface {
	isDashboardState()
}

// EmptyDashboard is shown while the store holds no records.
type EmptyDashboard struct{}

// PopulatedDashboard carries everything the chart, table and tiles need.
type PopulatedDashboard struct {
	Records []Measurement
	Summary MeasurementSummary
	Bars    []Bar
}

func (EmptyDashboard) isDashboardState()     {}
func (PopulatedDashboard) isDashboardState() {}

// NewDashboardState derives the display state from the store contents.
func NewDashboardState(records []Measurement) DashboardState {
	avg, ok := AverageDegradation(records)
	if !ok {
		return EmptyDashboard{}
	}
	return PopulatedDashboard{
		Records: records,
		Summary: MeasurementSummary{
			Count:              Count(records),
			TotalPlastic:       TotalPlastic(records),
			TotalFungus:        TotalFungus(records),
			AverageDegradation: avg,
		},
		Bars: MeasurementBars(records),
	}
}
