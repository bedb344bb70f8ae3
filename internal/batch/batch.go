// Package batch runs scripted sequences of spectrum calculations from
// YAML scenario files, saving each step to the run store.
package batch

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/nanocalc/internal/config"
	"github.com/san-kum/nanocalc/internal/models"
	"github.com/san-kum/nanocalc/internal/physics"
	"github.com/san-kum/nanocalc/internal/storage"
	"github.com/san-kum/nanocalc/internal/sweep"
)

// Scenario is a scripted calculation sequence.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single calculation in a scenario. Material, when set,
// overrides the literal particle index; Preset, when set, supplies every
// field the step leaves zero.
type Step struct {
	Model    string                `yaml:"model"`
	Preset   string                `yaml:"preset"`
	Radius   float64               `yaml:"radius"`
	Particle config.ParticleConfig `yaml:"particle"`
	Material string                `yaml:"material"`
	Medium   float64               `yaml:"medium"`
	Spectrum config.SpectrumConfig `yaml:"spectrum"`
	SaveAs   string                `yaml:"save_as"`
}

// StepResult pairs a step's label with its computed spectrum.
type StepResult struct {
	Label   string
	RunID   string
	Results []physics.OpticalResult
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}

	return &scenario, nil
}

// resolve fills a step from its preset and defaults, returning the
// effective configuration.
func resolve(step Step) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if step.Preset != "" {
		p := config.GetPreset(step.Preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", step.Preset, config.ListPresets())
		}
		*cfg = *p
	}

	if step.Model != "" {
		cfg.Model = step.Model
	}
	if step.Radius != 0 {
		cfg.Radius = step.Radius
	}
	if step.Medium != 0 {
		cfg.Medium = step.Medium
	}
	if step.Material != "" {
		cfg.Material = step.Material
	}
	if step.Particle.N != 0 || step.Particle.K != 0 {
		cfg.Particle = step.Particle
		cfg.Material = step.Material
	}
	if step.Spectrum.Step != 0 {
		cfg.Spectrum = step.Spectrum
	}

	return cfg, nil
}

// RunScenario executes all steps in order. A failing step aborts the
// scenario; earlier step results are returned with the error.
func RunScenario(ctx context.Context, scenario *Scenario, registry *models.Registry, store *storage.Store) ([]StepResult, error) {
	results := make([]StepResult, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		cfg, err := resolve(step)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		particle, err := cfg.ParticleIndex()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		model, err := registry.GetOptical(cfg.Model, models.Params{
			Radius:     cfg.Radius,
			Wavelength: cfg.Wavelength,
			Particle:   particle,
			Medium:     cfg.Medium,
		})
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		spectrum, err := sweep.Spectrum(ctx, model, cfg.Wavelengths())
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, cfg.Model, err)
		}

		label := step.SaveAs
		if label == "" {
			label = fmt.Sprintf("step%d", i+1)
		}

		sr := StepResult{Label: label, Results: spectrum}
		if store != nil {
			runID, err := store.Save(cfg.Model, cfg.Radius, particle, cfg.Medium, model.Warnings(), spectrum)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			sr.RunID = runID
		}

		results = append(results, sr)
	}

	return results, nil
}
