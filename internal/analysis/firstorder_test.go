package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
)

func exponentialTrajectory(k float64, n int) sim.Trajectory {
	traj := make(sim.Trajectory, n)
	for i := range traj {
		day := float64(i) * 0.5
		traj[i] = sim.Snapshot{
			TimeDays: day,
			Total:    100 * math.Exp(-k*day),
		}
	}
	return traj
}

func TestFitFirstOrderExactDecay(t *testing.T) {
	k := 0.3
	fit, err := FitFirstOrder(exponentialTrajectory(k, 40))
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	if math.Abs(fit.RatePerDay-k) > 1e-9 {
		t.Errorf("expected rate %g, got %g", k, fit.RatePerDay)
	}
	if math.Abs(fit.HalfLifeDays-math.Ln2/k) > 1e-9 {
		t.Errorf("expected half-life %g, got %g", math.Ln2/k, fit.HalfLifeDays)
	}
	if math.Abs(fit.R2-1) > 1e-9 {
		t.Errorf("expected perfect fit, got R2=%g", fit.R2)
	}
	if fit.Samples != 40 {
		t.Errorf("expected 40 samples, got %d", fit.Samples)
	}
}

func TestFitFirstOrderGrowingMass(t *testing.T) {
	fit, err := FitFirstOrder(exponentialTrajectory(-0.1, 20))
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	if fit.RatePerDay >= 0 {
		t.Errorf("expected negative rate for growing mass, got %g", fit.RatePerDay)
	}
	if fit.HalfLifeDays != 0 {
		t.Errorf("expected zero half-life when not decaying, got %g", fit.HalfLifeDays)
	}
}

func TestFitFirstOrderSkipsDepletedSamples(t *testing.T) {
	traj := exponentialTrajectory(0.3, 10)
	traj = append(traj, sim.Snapshot{TimeDays: 99, Total: 0})

	fit, err := FitFirstOrder(traj)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	if fit.Samples != 10 {
		t.Errorf("expected depleted snapshot skipped, got %d samples", fit.Samples)
	}
}

func TestFitFirstOrderInsufficientData(t *testing.T) {
	traj := sim.Trajectory{
		{TimeDays: 0, Total: 100},
		{TimeDays: 1, Total: 50},
	}

	_, err := FitFirstOrder(traj)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}

func TestFitFirstOrderOnSimulatedRun(t *testing.T) {
	traj, err := sim.Simulate(reactor.Default())
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	fit, err := FitFirstOrder(traj)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	if fit.RatePerDay <= 0 {
		t.Errorf("expected decaying total mass, got rate %g", fit.RatePerDay)
	}
	if fit.R2 <= 0 || fit.R2 > 1 {
		t.Errorf("R2 out of range: %g", fit.R2)
	}
}
