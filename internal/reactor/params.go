// Package reactor models glyphosate fate in a stirred soil-slurry
// bioreactor: Monod biodegradation by an acclimated consortium,
// first-order exchange with the sorbed phase, AMPA formation and
// decay, and logistic-free biomass growth and death.
package reactor

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid marks a parameter set rejected before any integration work.
var ErrInvalid = errors.New("reactor: invalid parameters")

// Params is the full coefficient and initial-condition set for one run.
// Aqueous concentrations are mg/L, sorbed is mg/kg, rate constants 1/h,
// times in hours.
type Params struct {
	Aqueous0 float64 `json:"aqueous0"` // initial dissolved glyphosate
	Sorbed0  float64 `json:"sorbed0"`  // initial solid-bound glyphosate
	AMPA0    float64 `json:"ampa0"`    // initial metabolite
	Biomass0 float64 `json:"biomass0"` // initial degrader biomass

	KMax   float64 `json:"k_max"`   // max specific degradation rate
	KS     float64 `json:"k_s"`     // half-saturation constant, mg/L
	MuMax  float64 `json:"mu_max"`  // max specific growth rate
	KDeath float64 `json:"k_death"` // first-order biomass decay
	Yield  float64 `json:"yield"`   // biomass yield on substrate, mg/mg

	KD    float64 `json:"k_d"`    // sorption distribution coefficient, L/kg
	KSorp float64 `json:"k_sorp"` // sorption exchange rate
	Theta float64 `json:"theta"`  // solid-to-liquid ratio, kg/L

	YAmpa float64 `json:"y_ampa"` // AMPA stoichiometric yield
	KAmpa float64 `json:"k_ampa"` // first-order AMPA decay

	Duration float64 `json:"duration"` // simulated horizon, h
	Dt       float64 `json:"dt"`       // integration step, h
}

// Default returns the reference slurry: 100 mg/L technical-grade
// glyphosate spiked into a 10% w/v soil suspension over 14 days.
func Default() Params {
	return Params{
		Aqueous0: 100.0,
		Sorbed0:  0.0,
		AMPA0:    0.0,
		Biomass0: 10.0,
		KMax:     0.08,
		KS:       20.0,
		MuMax:    0.05,
		KDeath:   0.005,
		Yield:    0.3,
		KD:       50.0,
		KSorp:    0.1,
		Theta:    0.1,
		YAmpa:    0.6,
		KAmpa:    0.02,
		Duration: 336.0,
		Dt:       0.5,
	}
}

// Validate rejects parameter sets the engine cannot integrate. All
// failures wrap ErrInvalid.
func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"aqueous0", p.Aqueous0},
		{"sorbed0", p.Sorbed0},
		{"ampa0", p.AMPA0},
		{"biomass0", p.Biomass0},
		{"k_max", p.KMax},
		{"k_s", p.KS},
		{"mu_max", p.MuMax},
		{"k_death", p.KDeath},
		{"yield", p.Yield},
		{"k_d", p.KD},
		{"k_sorp", p.KSorp},
		{"theta", p.Theta},
		{"y_ampa", p.YAmpa},
		{"k_ampa", p.KAmpa},
		{"duration", p.Duration},
		{"dt", p.Dt},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalid, f.name)
		}
	}

	if p.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalid, p.Dt)
	}
	if p.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalid, p.Duration)
	}
	if p.Dt > p.Duration {
		return fmt.Errorf("%w: dt %g exceeds duration %g", ErrInvalid, p.Dt, p.Duration)
	}

	initials := []struct {
		name  string
		value float64
	}{
		{"aqueous0", p.Aqueous0},
		{"sorbed0", p.Sorbed0},
		{"ampa0", p.AMPA0},
		{"biomass0", p.Biomass0},
	}
	for _, f := range initials {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %g", ErrInvalid, f.name, f.value)
		}
	}
	return nil
}

func (p Params) GetParams() map[string]float64 {
	return map[string]float64{
		"aqueous0": p.Aqueous0,
		"sorbed0":  p.Sorbed0,
		"ampa0":    p.AMPA0,
		"biomass0": p.Biomass0,
		"k_max":    p.KMax,
		"k_s":      p.KS,
		"mu_max":   p.MuMax,
		"k_death":  p.KDeath,
		"yield":    p.Yield,
		"k_d":      p.KD,
		"k_sorp":   p.KSorp,
		"theta":    p.Theta,
		"y_ampa":   p.YAmpa,
		"k_ampa":   p.KAmpa,
		"duration": p.Duration,
		"dt":       p.Dt,
	}
}

func (p *Params) SetParam(name string, value float64) error {
	switch name {
	case "aqueous0":
		p.Aqueous0 = value
	case "sorbed0":
		p.Sorbed0 = value
	case "ampa0":
		p.AMPA0 = value
	case "biomass0":
		p.Biomass0 = value
	case "k_max":
		p.KMax = value
	case "k_s":
		p.KS = value
	case "mu_max":
		p.MuMax = value
	case "k_death":
		p.KDeath = value
	case "yield":
		p.Yield = value
	case "k_d":
		p.KD = value
	case "k_sorp":
		p.KSorp = value
	case "theta":
		p.Theta = value
	case "y_ampa":
		p.YAmpa = value
	case "k_ampa":
		p.KAmpa = value
	case "duration":
		p.Duration = value
	case "dt":
		p.Dt = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
