package study

import (
	"fmt"

	"github.com/edgaromeroc/bioslurry-simulator/internal/metrics"
	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
)

// Sweep varies one parameter across an inclusive range while holding
// the rest of the base set fixed.
type Sweep struct {
	Param string
	Min   float64
	Max   float64
	Steps int
	Base  reactor.Params
}

// SweepPoint is the outcome at one swept value.
type SweepPoint struct {
	Value   float64
	Summary *metrics.Summary
	Err     error
}

// RunSweep simulates every swept value concurrently and reduces each
// run to its summary metrics. A failing value carries its error in the
// returned point instead of aborting the sweep.
func RunSweep(sw Sweep) ([]SweepPoint, error) {
	if sw.Steps < 2 {
		return nil, fmt.Errorf("study: sweep needs at least 2 steps, got %d", sw.Steps)
	}
	if sw.Max < sw.Min {
		return nil, fmt.Errorf("study: sweep max %g below min %g", sw.Max, sw.Min)
	}

	width := (sw.Max - sw.Min) / float64(sw.Steps-1)
	values := make([]float64, sw.Steps)
	runs := make([]sim.BatchRun, sw.Steps)
	for i := range runs {
		values[i] = sw.Min + float64(i)*width
		p := sw.Base
		if err := p.SetParam(sw.Param, values[i]); err != nil {
			return nil, err
		}
		runs[i] = sim.BatchRun{
			Label:  fmt.Sprintf("%s=%g", sw.Param, values[i]),
			Params: p,
		}
	}

	results := sim.RunBatch(runs)

	points := make([]SweepPoint, len(results))
	for i, res := range results {
		points[i] = SweepPoint{Value: values[i], Err: res.Err}
		if res.Err != nil {
			continue
		}

		summary, err := metrics.Extract(res.Trajectory, res.Params)
		if err != nil {
			points[i].Err = err
			continue
		}
		points[i].Summary = summary
	}

	return points, nil
}
