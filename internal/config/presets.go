package config

import "sort"

// Presets are named reactor scenarios from typical treatability setups.
var Presets = map[string]*Config{
	"baseline": {
		Dt: 0.5, Duration: 336,
		Initial:    InitialConfig{Aqueous: 100, Sorbed: 0, AMPA: 0, Biomass: 10},
		Kinetics:   KineticsConfig{KMax: 0.08, KS: 20, MuMax: 0.05, KDeath: 0.005, Yield: 0.3},
		Sorption:   SorptionConfig{KD: 50, KSorp: 0.1, Theta: 0.1},
		Metabolite: MetaboliteConfig{YAmpa: 0.6, KAmpa: 0.02},
	},
	"sterile-control": {
		Dt: 0.5, Duration: 336,
		Initial:    InitialConfig{Aqueous: 100, Sorbed: 0, AMPA: 0, Biomass: 0},
		Kinetics:   KineticsConfig{KMax: 0.08, KS: 20, MuMax: 0.05, KDeath: 0.005, Yield: 0.3},
		Sorption:   SorptionConfig{KD: 50, KSorp: 0.1, Theta: 0.1},
		Metabolite: MetaboliteConfig{YAmpa: 0.6, KAmpa: 0.02},
	},
	"high-inoculum": {
		Dt: 0.5, Duration: 168,
		Initial:    InitialConfig{Aqueous: 100, Sorbed: 0, AMPA: 0, Biomass: 50},
		Kinetics:   KineticsConfig{KMax: 0.08, KS: 20, MuMax: 0.05, KDeath: 0.005, Yield: 0.3},
		Sorption:   SorptionConfig{KD: 50, KSorp: 0.1, Theta: 0.1},
		Metabolite: MetaboliteConfig{YAmpa: 0.6, KAmpa: 0.02},
	},
	"sorption-heavy": {
		Dt: 0.5, Duration: 336,
		Initial:    InitialConfig{Aqueous: 100, Sorbed: 0, AMPA: 0, Biomass: 10},
		Kinetics:   KineticsConfig{KMax: 0.08, KS: 20, MuMax: 0.05, KDeath: 0.005, Yield: 0.3},
		Sorption:   SorptionConfig{KD: 200, KSorp: 0.5, Theta: 0.2},
		Metabolite: MetaboliteConfig{YAmpa: 0.6, KAmpa: 0.02},
	},
	"fast-track": {
		Dt: 0.25, Duration: 168,
		Initial:    InitialConfig{Aqueous: 100, Sorbed: 0, AMPA: 0, Biomass: 25},
		Kinetics:   KineticsConfig{KMax: 0.2, KS: 20, MuMax: 0.08, KDeath: 0.005, Yield: 0.3},
		Sorption:   SorptionConfig{KD: 50, KSorp: 0.1, Theta: 0.1},
		Metabolite: MetaboliteConfig{YAmpa: 0.6, KAmpa: 0.02},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
