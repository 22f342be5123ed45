package config

// ParamSpec bounds one tunable parameter for interactive front ends.
type ParamSpec struct {
	Key   string
	Label string
	Unit  string
	Min   float64
	Max   float64
	Step  float64
}

// Surface lists every tunable in display order. Keys match the names
// accepted by reactor.Params.SetParam.
func Surface() []ParamSpec {
	return []ParamSpec{
		{Key: "aqueous0", Label: "Initial aqueous glyphosate", Unit: "mg/L", Min: 0, Max: 500, Step: 5},
		{Key: "sorbed0", Label: "Initial sorbed glyphosate", Unit: "mg/kg", Min: 0, Max: 200, Step: 5},
		{Key: "ampa0", Label: "Initial AMPA", Unit: "mg/L", Min: 0, Max: 100, Step: 1},
		{Key: "biomass0", Label: "Initial biomass", Unit: "mg/L", Min: 0, Max: 200, Step: 1},
		{Key: "k_max", Label: "Max degradation rate", Unit: "1/h", Min: 0, Max: 0.5, Step: 0.005},
		{Key: "k_s", Label: "Half-saturation constant", Unit: "mg/L", Min: 0.1, Max: 200, Step: 0.5},
		{Key: "mu_max", Label: "Max growth rate", Unit: "1/h", Min: 0, Max: 0.3, Step: 0.005},
		{Key: "k_death", Label: "Biomass decay rate", Unit: "1/h", Min: 0, Max: 0.05, Step: 0.0005},
		{Key: "yield", Label: "Biomass yield", Unit: "mg/mg", Min: 0, Max: 1, Step: 0.01},
		{Key: "k_d", Label: "Distribution coefficient", Unit: "L/kg", Min: 1, Max: 500, Step: 1},
		{Key: "k_sorp", Label: "Sorption exchange rate", Unit: "1/h", Min: 0, Max: 1, Step: 0.01},
		{Key: "theta", Label: "Solid-to-liquid ratio", Unit: "kg/L", Min: 0.01, Max: 1, Step: 0.01},
		{Key: "y_ampa", Label: "AMPA yield", Unit: "mg/mg", Min: 0, Max: 1, Step: 0.01},
		{Key: "k_ampa", Label: "AMPA decay rate", Unit: "1/h", Min: 0, Max: 0.2, Step: 0.001},
		{Key: "duration", Label: "Run duration", Unit: "h", Min: 24, Max: 2160, Step: 24},
		{Key: "dt", Label: "Time step", Unit: "h", Min: 0.05, Max: 24, Step: 0.05},
	}
}
