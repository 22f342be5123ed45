// Package metrics reduces a simulated trajectory to the headline
// figures of a treatability study: removal at fixed day checkpoints,
// time to 90% removal, and metabolite/biomass peaks.
package metrics

import (
	"errors"
	"math"

	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
)

// ErrEmptyTrajectory is returned when there is nothing to summarize.
var ErrEmptyTrajectory = errors.New("metrics: empty trajectory")

// dayTolerance is how far, in days, a checkpoint sample may sit from
// its nominal day and still count.
const dayTolerance = 0.1

// removalTarget is the removal percentage defining T90.
const removalTarget = 90.0

type Summary struct {
	RemovalDay3  float64 `json:"removal_day3"`
	RemovalDay7  float64 `json:"removal_day7"`
	RemovalDay14 float64 `json:"removal_day14"`

	ResidualDay3  float64 `json:"residual_day3"`
	ResidualDay7  float64 `json:"residual_day7"`
	ResidualDay14 float64 `json:"residual_day14"`

	T90Reached bool    `json:"t90_reached"`
	T90Days    float64 `json:"t90_days"`

	PeakBiomass    float64 `json:"peak_biomass"`
	PeakBiomassDay float64 `json:"peak_biomass_day"`
	PeakAMPA       float64 `json:"peak_ampa"`
	PeakAMPADay    float64 `json:"peak_ampa_day"`

	FinalRemoval float64 `json:"final_removal"`
	FinalBiomass float64 `json:"final_biomass"`
	FinalAMPA    float64 `json:"final_ampa"`

	InitialMass  float64 `json:"initial_mass"`
	DurationDays float64 `json:"duration_days"`
}

// Extract reduces traj to a Summary. Day checkpoints take the first
// snapshot within dayTolerance of the nominal day; when the run is too
// short to reach a checkpoint the initial snapshot stands in for it.
func Extract(traj sim.Trajectory, p reactor.Params) (*Summary, error) {
	if len(traj) == 0 {
		return nil, ErrEmptyTrajectory
	}

	last := traj[len(traj)-1]
	s := &Summary{
		FinalRemoval: last.Removal,
		FinalBiomass: last.Biomass,
		FinalAMPA:    last.AMPA,
		InitialMass:  p.TotalMass(p.InitialState()),
		DurationDays: p.Duration / 24,
	}

	day3 := snapshotNearDay(traj, 3)
	day7 := snapshotNearDay(traj, 7)
	day14 := snapshotNearDay(traj, 14)
	s.RemovalDay3, s.ResidualDay3 = day3.Removal, day3.Total
	s.RemovalDay7, s.ResidualDay7 = day7.Removal, day7.Total
	s.RemovalDay14, s.ResidualDay14 = day14.Removal, day14.Total

	for _, snap := range traj {
		if snap.Biomass > s.PeakBiomass {
			s.PeakBiomass = snap.Biomass
			s.PeakBiomassDay = snap.TimeDays
		}
		if snap.AMPA > s.PeakAMPA {
			s.PeakAMPA = snap.AMPA
			s.PeakAMPADay = snap.TimeDays
		}
	}

	for _, snap := range traj {
		if snap.Removal >= removalTarget {
			s.T90Reached = true
			s.T90Days = snap.TimeDays
			break
		}
	}

	return s, nil
}

func snapshotNearDay(traj sim.Trajectory, day float64) sim.Snapshot {
	for _, s := range traj {
		if math.Abs(s.TimeDays-day) <= dayTolerance {
			return s
		}
	}
	return traj[0]
}
