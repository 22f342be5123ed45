package sim

import (
	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
)

const hoursPerDay = 24.0

// stepGuard absorbs float truncation when duration is not an exact
// multiple of dt (0.7/0.1 evaluates just below 7).
const stepGuard = 1e-9

// Simulate integrates p from its initial condition to p.Duration and
// returns floor(duration/dt)+1 snapshots.
func Simulate(p reactor.Params) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	steps := int(p.Duration/p.Dt + stepGuard)
	traj := make(Trajectory, 0, steps+1)

	x := p.InitialState()
	total0 := p.TotalMass(x)

	for i := 0; i <= steps; i++ {
		t := float64(i) * p.Dt
		r := p.Rates(x)
		total := p.TotalMass(x)

		removal := 0.0
		if total0 > 0 {
			removal = clamp(100*(1-total/total0), 0, 100)
		}

		traj = append(traj, Snapshot{
			TimeHours:       t,
			TimeDays:        t / hoursPerDay,
			Aqueous:         x.Aqueous,
			Sorbed:          x.Sorbed,
			AMPA:            x.AMPA,
			Biomass:         x.Biomass,
			Total:           total,
			Removal:         removal,
			Monod:           r.Monod,
			DegradationRate: r.Degradation,
			SorptionRate:    r.Sorption,
		})

		if i == steps {
			break
		}

		d := p.Derive(r)
		x = reactor.State{
			Aqueous: x.Aqueous + d.Aqueous*p.Dt,
			Sorbed:  x.Sorbed + d.Sorbed*p.Dt,
			AMPA:    x.AMPA + d.AMPA*p.Dt,
			Biomass: x.Biomass + d.Biomass*p.Dt,
		}.Clamped()
	}

	return traj, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
