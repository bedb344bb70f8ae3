package physics

import (
	"math"
	"testing"
)

func TestOpticalResultConservation(t *testing.T) {
	result := OpticalResult{
		Wavelength: 500.0,
		QSca:       1.5,
		QAbs:       0.5,
		QExt:       2.0,
		CSca:       100.0,
		CAbs:       33.33,
		CExt:       133.33,
	}

	if result.CheckConservation() > 1e-10 {
		t.Errorf("expected negligible conservation error, got %e", result.CheckConservation())
	}
}

func TestOpticalResultConservationViolation(t *testing.T) {
	result := OpticalResult{QSca: 1.0, QAbs: 1.0, QExt: 2.5}

	if math.Abs(result.CheckConservation()-0.5) > 1e-12 {
		t.Errorf("expected conservation error 0.5, got %f", result.CheckConservation())
	}
}

func TestRefractiveIndexComplex(t *testing.T) {
	ri := RefractiveIndex{N: 0.5, K: 2.5}
	c := ri.Complex()

	if real(c) != 0.5 || imag(c) != 2.5 {
		t.Errorf("expected 0.5+2.5i, got %v", c)
	}
}

func TestRefractiveIndexPermittivity(t *testing.T) {
	// (1.5 + 0i)^2 = 2.25
	ri := RefractiveIndex{N: 1.5}
	eps := ri.Permittivity()

	if math.Abs(real(eps)-2.25) > 1e-12 || math.Abs(imag(eps)) > 1e-12 {
		t.Errorf("expected 2.25+0i, got %v", eps)
	}

	// (0.5 + 2.5i)^2 = 0.25 - 6.25 + 2.5i = -6 + 2.5i
	ri = RefractiveIndex{N: 0.5, K: 2.5}
	eps = ri.Permittivity()

	if math.Abs(real(eps)+6.0) > 1e-12 || math.Abs(imag(eps)-2.5) > 1e-12 {
		t.Errorf("expected -6+2.5i, got %v", eps)
	}
}

func TestRefractiveIndexString(t *testing.T) {
	s := RefractiveIndex{N: 0.47, K: 2.4}.String()
	if s != "0.4700 + 2.4000i" {
		t.Errorf("unexpected format: %q", s)
	}
}

type stubModel struct {
	err error
}

func (s stubModel) Name() string        { return "stub" }
func (s stubModel) Description() string { return "stub model" }
func (s stubModel) Validate() error     { return s.err }
func (s stubModel) Warnings() []string  { return nil }

func TestIsApplicable(t *testing.T) {
	if !IsApplicable(stubModel{}) {
		t.Error("expected applicable for passing validation")
	}
	if IsApplicable(stubModel{err: InvalidParameter("bad")}) {
		t.Error("expected not applicable for failing validation")
	}
}
