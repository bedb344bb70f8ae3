package models

import (
	"fmt"
	"sort"

	"github.com/san-kum/nanocalc/internal/physics"
)

// Params is the common parameter set optical models are built from.
type Params struct {
	Radius     float64 // nm
	Wavelength float64 // nm
	Particle   physics.RefractiveIndex
	Medium     float64
}

// Registry maps model names to factories so drivers and the CLI can
// construct models without knowing concrete types.
type Registry struct {
	optical map[string]func(Params) physics.OpticalModel
}

func NewRegistry() *Registry {
	r := &Registry{
		optical: make(map[string]func(Params) physics.OpticalModel),
	}

	r.optical["rayleigh"] = func(p Params) physics.OpticalModel {
		return NewRayleigh(p.Radius, p.Wavelength, p.Particle, p.Medium)
	}

	return r
}

// RegisterOptical adds a factory under the given name, replacing any
// existing registration.
func (r *Registry) RegisterOptical(name string, fn func(Params) physics.OpticalModel) {
	r.optical[name] = fn
}

func (r *Registry) GetOptical(name string, p Params) (physics.OpticalModel, error) {
	fn, ok := r.optical[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	return fn(p), nil
}

func (r *Registry) ListOptical() []string {
	names := make([]string, 0, len(r.optical))
	for name := range r.optical {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
