package study

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
)

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	doc := `name: dose response
description: three spike levels
base: baseline
runs:
  - name: low
    params: {aqueous0: 25}
  - name: mid
    params: {aqueous0: 100}
  - name: high
    params: {aqueous0: 250}
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	sc, err := LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario() error = %v", err)
	}
	if sc.Name != "dose response" {
		t.Errorf("Name = %q, want %q", sc.Name, "dose response")
	}
	if len(sc.Runs) != 3 {
		t.Fatalf("len(Runs) = %d, want 3", len(sc.Runs))
	}

	runs, err := sc.BatchRuns()
	if err != nil {
		t.Fatalf("BatchRuns() error = %v", err)
	}
	if runs[0].Params.Aqueous0 != 25 {
		t.Errorf("low aqueous0 = %g, want 25", runs[0].Params.Aqueous0)
	}
	if runs[2].Params.Aqueous0 != 250 {
		t.Errorf("high aqueous0 = %g, want 250", runs[2].Params.Aqueous0)
	}

	// params not named in a run come from the base preset
	if runs[1].Params.KMax != 0.08 {
		t.Errorf("mid k_max = %g, want 0.08", runs[1].Params.KMax)
	}
}

func TestLoadScenarioMissingFile(t *testing.T) {
	if _, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadScenarioNoRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("name: empty\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadScenario(path); err == nil {
		t.Error("expected error for scenario without runs")
	}
}

func TestBatchRunsRejects(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
	}{
		{"unknown base preset", Scenario{Base: "nope", Runs: []ScenarioRun{{Name: "a"}}}},
		{"unknown param", Scenario{Runs: []ScenarioRun{{Name: "a", Params: map[string]float64{"bogus": 1}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.scenario.BatchRuns(); err == nil {
				t.Errorf("BatchRuns() error = nil, want error")
			}
		})
	}
}

func TestBatchRunsNamesUnnamedRuns(t *testing.T) {
	sc := Scenario{Runs: []ScenarioRun{{}, {}}}
	runs, err := sc.BatchRuns()
	if err != nil {
		t.Fatalf("BatchRuns() error = %v", err)
	}
	if runs[0].Label != "run-1" || runs[1].Label != "run-2" {
		t.Errorf("labels = %q, %q, want run-1, run-2", runs[0].Label, runs[1].Label)
	}
}

func TestRunSweep(t *testing.T) {
	base := reactor.Default()
	base.Duration = 48

	points, err := RunSweep(Sweep{Param: "k_max", Min: 0.02, Max: 0.1, Steps: 5, Base: base})
	if err != nil {
		t.Fatalf("RunSweep() error = %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("len(points) = %d, want 5", len(points))
	}
	if math.Abs(points[0].Value-0.02) > 1e-12 || math.Abs(points[4].Value-0.1) > 1e-12 {
		t.Errorf("endpoints = %g, %g, want 0.02, 0.1", points[0].Value, points[4].Value)
	}
	for i, pt := range points {
		if pt.Err != nil {
			t.Fatalf("point %d: %v", i, pt.Err)
		}
	}

	// more degradation capacity removes more glyphosate
	if points[4].Summary.FinalRemoval <= points[0].Summary.FinalRemoval {
		t.Errorf("removal at k_max=0.1 (%g) not above k_max=0.02 (%g)",
			points[4].Summary.FinalRemoval, points[0].Summary.FinalRemoval)
	}
}

func TestRunSweepRejects(t *testing.T) {
	base := reactor.Default()

	tests := []struct {
		name  string
		sweep Sweep
	}{
		{"single step", Sweep{Param: "k_max", Min: 0, Max: 1, Steps: 1, Base: base}},
		{"inverted range", Sweep{Param: "k_max", Min: 1, Max: 0, Steps: 3, Base: base}},
		{"unknown param", Sweep{Param: "bogus", Min: 0, Max: 1, Steps: 3, Base: base}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := RunSweep(tt.sweep); err == nil {
				t.Errorf("RunSweep() error = nil, want error")
			}
		})
	}
}

func TestRunSweepCarriesPointErrors(t *testing.T) {
	base := reactor.Default()
	base.Duration = 48

	// sweeping dt through zero makes the low end invalid without
	// aborting the rest of the sweep
	points, err := RunSweep(Sweep{Param: "dt", Min: 0, Max: 1, Steps: 3, Base: base})
	if err != nil {
		t.Fatalf("RunSweep() error = %v", err)
	}
	if points[0].Err == nil {
		t.Error("dt=0 point should carry an error")
	}
	if points[2].Err != nil {
		t.Errorf("dt=1 point failed: %v", points[2].Err)
	}
}

