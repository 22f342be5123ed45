// Package analysis fits observed kinetics to simulated trajectories.
//
// Treatability reports quote an apparent first-order rate constant and
// half-life even when the underlying kinetics saturate, so [FitFirstOrder]
// regresses log total glyphosate against time and reports the slope with
// its goodness of fit:
//
//	fit, err := analysis.FitFirstOrder(traj)
//	if err == nil && fit.R2 > 0.98 {
//	    // decay is effectively first-order
//	}
package analysis

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
)

// ErrInsufficientData is returned when fewer than three snapshots carry
// positive total mass.
var ErrInsufficientData = errors.New("analysis: not enough positive samples for regression")

const minSamples = 3

// FirstOrderFit is an apparent first-order decay fitted over a run.
type FirstOrderFit struct {
	RatePerDay   float64 // observed rate constant k_obs, 1/day
	HalfLifeDays float64 // ln 2 / k_obs, zero when not decaying
	R2           float64
	Samples      int
}

// FitFirstOrder regresses ln(total) on time in days over every snapshot
// with positive total mass. Snapshots at zero are skipped, not treated
// as -Inf.
func FitFirstOrder(traj sim.Trajectory) (*FirstOrderFit, error) {
	xs := make([]float64, 0, len(traj))
	ys := make([]float64, 0, len(traj))
	for _, s := range traj {
		if s.Total <= 0 {
			continue
		}
		xs = append(xs, s.TimeDays)
		ys = append(ys, math.Log(s.Total))
	}
	if len(xs) < minSamples {
		return nil, ErrInsufficientData
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)

	fit := &FirstOrderFit{
		RatePerDay: -beta,
		R2:         stat.RSquared(xs, ys, nil, alpha, beta),
		Samples:    len(xs),
	}
	if fit.RatePerDay > 0 {
		fit.HalfLifeDays = math.Ln2 / fit.RatePerDay
	}
	return fit, nil
}
