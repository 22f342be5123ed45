package sim

import (
	"sync"

	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
)

// BatchRun is one labeled parameter set queued for RunBatch.
type BatchRun struct {
	Label  string
	Params reactor.Params
}

// BatchResult pairs a batch entry with its outcome.
type BatchResult struct {
	Label      string
	Params     reactor.Params
	Trajectory Trajectory
	Err        error
}

// RunBatch simulates every entry concurrently. Results keep the input
// order, and a failed entry carries its error instead of aborting the
// rest of the batch.
func RunBatch(runs []BatchRun) []BatchResult {
	results := make([]BatchResult, len(runs))

	var wg sync.WaitGroup
	for i, run := range runs {
		wg.Add(1)
		go func(idx int, r BatchRun) {
			defer wg.Done()
			traj, err := Simulate(r.Params)
			results[idx] = BatchResult{
				Label:      r.Label,
				Params:     r.Params,
				Trajectory: traj,
				Err:        err,
			}
		}(i, run)
	}
	wg.Wait()

	return results
}
