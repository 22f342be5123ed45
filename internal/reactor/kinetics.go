package reactor

import "math"

// epsilon guards denominators when both the concentration and the
// constant underneath it are zero.
const epsilon = 1e-9

// State is the instantaneous condition of the reactor.
type State struct {
	Aqueous float64 // dissolved glyphosate, mg/L
	Sorbed  float64 // solid-bound glyphosate, mg/kg
	AMPA    float64 // aminomethylphosphonic acid, mg/L
	Biomass float64 // degrader biomass, mg/L
}

// Rates holds every process rate evaluated at one state.
type Rates struct {
	Monod       float64 // saturation factor, dimensionless
	Degradation float64 // aqueous glyphosate consumption, mg/L/h
	Sorption    float64 // net flux to the solid phase (negative = desorbing), mg/L/h
	Growth      float64 // biomass gain, mg/L/h
	Death       float64 // biomass loss, mg/L/h
	Formation   float64 // AMPA production, mg/L/h
	AmpaDecay   float64 // AMPA mineralization, mg/L/h
}

func (p Params) InitialState() State {
	return State{
		Aqueous: p.Aqueous0,
		Sorbed:  p.Sorbed0,
		AMPA:    p.AMPA0,
		Biomass: p.Biomass0,
	}
}

// Rates evaluates the kinetic model at s. Degradation follows Monod
// saturation on the aqueous phase only; the sorbed pool is exchanged
// through a linear driving-force term and is not directly bioavailable.
func (p Params) Rates(s State) Rates {
	monod := s.Aqueous / (p.KS + s.Aqueous + epsilon)
	deg := p.KMax * monod * s.Biomass
	sorp := p.KSorp * (s.Aqueous - s.Sorbed/(p.KD+epsilon))
	return Rates{
		Monod:       monod,
		Degradation: deg,
		Sorption:    sorp,
		Growth:      p.MuMax * monod * s.Biomass,
		Death:       p.KDeath * s.Biomass,
		Formation:   p.YAmpa * deg,
		AmpaDecay:   p.KAmpa * s.AMPA,
	}
}

// Derive assembles the state derivative from the process rates. The
// sorption flux is divided by the solid-to-liquid ratio so the sorbed
// balance stays in mg per kg of soil.
func (p Params) Derive(r Rates) State {
	return State{
		Aqueous: -r.Degradation - r.Sorption,
		Sorbed:  r.Sorption / (p.Theta + epsilon),
		AMPA:    r.Formation - r.AmpaDecay,
		Biomass: r.Growth - r.Death,
	}
}

// TotalMass is the glyphosate inventory per liter of slurry, aqueous
// plus solid-bound.
func (p Params) TotalMass(s State) float64 {
	return s.Aqueous + p.Theta*s.Sorbed
}

// Clamped floors every pool at zero. Euler steps can overshoot into
// negative concentrations near depletion.
func (s State) Clamped() State {
	return State{
		Aqueous: math.Max(0, s.Aqueous),
		Sorbed:  math.Max(0, s.Sorbed),
		AMPA:    math.Max(0, s.AMPA),
		Biomass: math.Max(0, s.Biomass),
	}
}
