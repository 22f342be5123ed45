package sim

// Snapshot is one recorded step boundary. State fields hold the
// pre-update values; rate fields are evaluated at that same state.
type Snapshot struct {
	TimeHours       float64 `json:"time_h" csv:"time_h"`
	TimeDays        float64 `json:"time_d" csv:"time_d"`
	Aqueous         float64 `json:"aqueous" csv:"aqueous"`
	Sorbed          float64 `json:"sorbed" csv:"sorbed"`
	AMPA            float64 `json:"ampa" csv:"ampa"`
	Biomass         float64 `json:"biomass" csv:"biomass"`
	Total           float64 `json:"total" csv:"total"`
	Removal         float64 `json:"removal_pct" csv:"removal_pct"`
	Monod           float64 `json:"monod" csv:"monod"`
	DegradationRate float64 `json:"degradation_rate" csv:"degradation_rate"`
	SorptionRate    float64 `json:"sorption_rate" csv:"sorption_rate"`
}

// Trajectory is the complete ordered output of one run.
type Trajectory []Snapshot

// TimesDays returns the time axis in days.
func (tr Trajectory) TimesDays() []float64 {
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = s.TimeDays
	}
	return out
}

// Column extracts the named series. The second return is false for
// unknown names.
func (tr Trajectory) Column(name string) ([]float64, bool) {
	var get func(Snapshot) float64
	switch name {
	case "aqueous":
		get = func(s Snapshot) float64 { return s.Aqueous }
	case "sorbed":
		get = func(s Snapshot) float64 { return s.Sorbed }
	case "ampa":
		get = func(s Snapshot) float64 { return s.AMPA }
	case "biomass":
		get = func(s Snapshot) float64 { return s.Biomass }
	case "total":
		get = func(s Snapshot) float64 { return s.Total }
	case "removal":
		get = func(s Snapshot) float64 { return s.Removal }
	default:
		return nil, false
	}

	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = get(s)
	}
	return out, true
}

// Columns lists the series names Column understands, in display order.
func Columns() []string {
	return []string{"aqueous", "sorbed", "ampa", "biomass", "total", "removal"}
}
