package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/nanocalc/internal/materials"
	"github.com/san-kum/nanocalc/internal/physics"
)

const (
	DefaultRadius     = 50.0  // nm
	DefaultWavelength = 500.0 // nm
	DefaultParticleN  = 0.5   // Au-like at 500 nm
	DefaultParticleK  = 2.5
	DefaultMedium     = 1.33 // water

	DefaultSpectrumFrom = 300.0 // nm
	DefaultSpectrumTo   = 800.0 // nm
	DefaultSpectrumStep = 5.0   // nm
)

type Config struct {
	Model      string         `yaml:"model"`
	Radius     float64        `yaml:"radius"`
	Wavelength float64        `yaml:"wavelength"`
	Particle   ParticleConfig `yaml:"particle"`
	Medium     float64        `yaml:"medium"`
	Material   string         `yaml:"material"`
	Spectrum   SpectrumConfig `yaml:"spectrum"`
}

type ParticleConfig struct {
	N float64 `yaml:"n"`
	K float64 `yaml:"k"`
}

type SpectrumConfig struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	Step float64 `yaml:"step"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:      "rayleigh",
		Radius:     DefaultRadius,
		Wavelength: DefaultWavelength,
		Particle:   ParticleConfig{N: DefaultParticleN, K: DefaultParticleK},
		Medium:     DefaultMedium,
		Spectrum: SpectrumConfig{
			From: DefaultSpectrumFrom,
			To:   DefaultSpectrumTo,
			Step: DefaultSpectrumStep,
		},
	}
}

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

// ParticleIndex resolves the particle refractive index, letting a named
// material preset override the literal n/k values.
func (c *Config) ParticleIndex() (physics.RefractiveIndex, error) {
	if c.Material != "" {
		p, ok := materials.Get(c.Material)
		if !ok {
			return physics.RefractiveIndex{}, fmt.Errorf("unknown material: %s (available: %v)", c.Material, materials.List())
		}
		return p.Index, nil
	}
	return physics.RefractiveIndex{N: c.Particle.N, K: c.Particle.K}, nil
}

// Wavelengths builds the sweep grid [From, To] inclusive with the
// configured step.
func (c *Config) Wavelengths() []float64 {
	if c.Spectrum.Step <= 0 || c.Spectrum.To < c.Spectrum.From {
		return nil
	}

	n := int((c.Spectrum.To-c.Spectrum.From)/c.Spectrum.Step) + 1
	wls := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		wls = append(wls, c.Spectrum.From+float64(i)*c.Spectrum.Step)
	}
	return wls
}
