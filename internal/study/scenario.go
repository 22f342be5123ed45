// Package study runs structured batches of reactor simulations:
// scripted scenario files and single-parameter sweeps.
package study

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edgaromeroc/bioslurry-simulator/internal/config"
	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
	"github.com/edgaromeroc/bioslurry-simulator/internal/sim"
)

// Scenario is a scripted set of named runs sharing one base parameter
// set. Each run overrides individual parameters by name, so a file can
// express a dose-response series or an inoculum ladder in a few lines.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Base        string        `yaml:"base"` // preset name, empty means defaults
	Runs        []ScenarioRun `yaml:"runs"`
}

// ScenarioRun is one entry in a scenario.
type ScenarioRun struct {
	Name   string             `yaml:"name"`
	Params map[string]float64 `yaml:"params"`
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}

	if len(sc.Runs) == 0 {
		return nil, fmt.Errorf("study: scenario %s has no runs", path)
	}
	return &sc, nil
}

// BatchRuns expands the scenario into concrete parameter sets ready for
// sim.RunBatch.
func (sc *Scenario) BatchRuns() ([]sim.BatchRun, error) {
	base := reactor.Default()
	if sc.Base != "" {
		cfg := config.GetPreset(sc.Base)
		if cfg == nil {
			return nil, fmt.Errorf("study: unknown base preset: %s", sc.Base)
		}
		base = cfg.Params()
	}

	runs := make([]sim.BatchRun, 0, len(sc.Runs))
	for i, r := range sc.Runs {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("run-%d", i+1)
		}

		p := base
		for key, value := range r.Params {
			if err := p.SetParam(key, value); err != nil {
				return nil, fmt.Errorf("study: run %s: %w", name, err)
			}
		}

		runs = append(runs, sim.BatchRun{Label: name, Params: p})
	}

	return runs, nil
}
