package models

import (
	"testing"

	"github.com/san-kum/nanocalc/internal/physics"
)

func TestRegistryGetOptical(t *testing.T) {
	r := NewRegistry()

	m, err := r.GetOptical("rayleigh", Params{
		Radius:     50,
		Wavelength: 500,
		Particle:   physics.RefractiveIndex{N: 0.5, K: 2.5},
		Medium:     1.33,
	})
	if err != nil {
		t.Fatalf("expected model, got error: %v", err)
	}
	if m.Name() == "" {
		t.Error("expected non-empty model name")
	}
	if err := m.Validate(); err != nil {
		t.Errorf("expected valid model, got %v", err)
	}
}

func TestRegistryUnknownModel(t *testing.T) {
	r := NewRegistry()

	if _, err := r.GetOptical("mie_full", Params{}); err == nil {
		t.Error("expected error for unknown model")
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()

	names := r.ListOptical()
	if len(names) != 1 || names[0] != "rayleigh" {
		t.Errorf("unexpected model list: %v", names)
	}
}

func TestRegistryRegisterOptical(t *testing.T) {
	r := NewRegistry()

	r.RegisterOptical("rayleigh2", func(p Params) physics.OpticalModel {
		return NewRayleigh(p.Radius, p.Wavelength, p.Particle, p.Medium)
	})

	if len(r.ListOptical()) != 2 {
		t.Errorf("expected 2 models, got %v", r.ListOptical())
	}
}
