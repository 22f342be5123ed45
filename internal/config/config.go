package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edgaromeroc/bioslurry-simulator/internal/reactor"
)

type Config struct {
	Dt         float64          `yaml:"dt"`
	Duration   float64          `yaml:"duration"`
	Initial    InitialConfig    `yaml:"initial"`
	Kinetics   KineticsConfig   `yaml:"kinetics"`
	Sorption   SorptionConfig   `yaml:"sorption"`
	Metabolite MetaboliteConfig `yaml:"metabolite"`
}

type InitialConfig struct {
	Aqueous float64 `yaml:"aqueous"`
	Sorbed  float64 `yaml:"sorbed"`
	AMPA    float64 `yaml:"ampa"`
	Biomass float64 `yaml:"biomass"`
}

type KineticsConfig struct {
	KMax   float64 `yaml:"k_max"`
	KS     float64 `yaml:"k_s"`
	MuMax  float64 `yaml:"mu_max"`
	KDeath float64 `yaml:"k_death"`
	Yield  float64 `yaml:"yield"`
}

type SorptionConfig struct {
	KD    float64 `yaml:"k_d"`
	KSorp float64 `yaml:"k_sorp"`
	Theta float64 `yaml:"theta"`
}

type MetaboliteConfig struct {
	YAmpa float64 `yaml:"y_ampa"`
	KAmpa float64 `yaml:"k_ampa"`
}

func DefaultConfig() *Config {
	return FromParams(reactor.Default())
}

// FromParams mirrors a flat parameter set into the sectioned file layout.
func FromParams(p reactor.Params) *Config {
	return &Config{
		Dt:       p.Dt,
		Duration: p.Duration,
		Initial: InitialConfig{
			Aqueous: p.Aqueous0,
			Sorbed:  p.Sorbed0,
			AMPA:    p.AMPA0,
			Biomass: p.Biomass0,
		},
		Kinetics: KineticsConfig{
			KMax:   p.KMax,
			KS:     p.KS,
			MuMax:  p.MuMax,
			KDeath: p.KDeath,
			Yield:  p.Yield,
		},
		Sorption: SorptionConfig{
			KD:    p.KD,
			KSorp: p.KSorp,
			Theta: p.Theta,
		},
		Metabolite: MetaboliteConfig{
			YAmpa: p.YAmpa,
			KAmpa: p.KAmpa,
		},
	}
}

// Params flattens the file layout back into engine parameters.
func (c *Config) Params() reactor.Params {
	return reactor.Params{
		Aqueous0: c.Initial.Aqueous,
		Sorbed0:  c.Initial.Sorbed,
		AMPA0:    c.Initial.AMPA,
		Biomass0: c.Initial.Biomass,
		KMax:     c.Kinetics.KMax,
		KS:       c.Kinetics.KS,
		MuMax:    c.Kinetics.MuMax,
		KDeath:   c.Kinetics.KDeath,
		Yield:    c.Kinetics.Yield,
		KD:       c.Sorption.KD,
		KSorp:    c.Sorption.KSorp,
		Theta:    c.Sorption.Theta,
		YAmpa:    c.Metabolite.YAmpa,
		KAmpa:    c.Metabolite.KAmpa,
		Duration: c.Duration,
		Dt:       c.Dt,
	}
}

// Load reads path over the defaults, so partial files only override the
// keys they name.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
