package models

import (
	"fmt"
	"math"

	"github.com/san-kum/nanocalc/internal/physics"
)

// Rayleigh computes optical properties of a spherical nanoparticle in the
// small-particle (x << 1) limit of scattering theory. The medium index is
// real; absorbing media are out of scope.
type Rayleigh struct {
	Radius     float64 // nm
	Wavelength float64 // nm
	Particle   physics.RefractiveIndex
	Medium     float64
}

// NewRayleigh builds a model from the four physical parameters.
func NewRayleigh(radius, wavelength float64, particle physics.RefractiveIndex, medium float64) *Rayleigh {
	return &Rayleigh{
		Radius:     radius,
		Wavelength: wavelength,
		Particle:   particle,
		Medium:     medium,
	}
}

// SizeParameter returns x = 2πr/λ, the regime indicator: the
// approximation holds for x << 1.
func (r *Rayleigh) SizeParameter() float64 {
	return 2.0 * math.Pi * r.Radius / r.Wavelength
}

func (r *Rayleigh) Name() string {
	return "Mie Scattering (Rayleigh Approximation)"
}

func (r *Rayleigh) Description() string {
	return "Calculate scattering and absorption for spherical nanoparticles (x < 1)"
}

func (r *Rayleigh) Validate() error {
	if r.Radius <= 0 {
		return physics.InvalidParameter("radius must be positive")
	}
	if r.Wavelength <= 0 {
		return physics.InvalidParameter("wavelength must be positive")
	}
	if r.Medium <= 0 {
		return physics.InvalidParameter("medium refractive index must be positive")
	}
	return nil
}

func (r *Rayleigh) Warnings() []string {
	var warnings []string

	if x := r.SizeParameter(); x > 1.0 {
		warnings = append(warnings, fmt.Sprintf(
			"size parameter x=%.2f > 1: Rayleigh approximation may be inaccurate, full Mie theory recommended", x))
	}

	return warnings
}

// Calculate evaluates the model at its configured wavelength. A
// validation failure is returned wrapped in a *physics.CalculationError.
// Pure: identical inputs produce bit-identical results.
func (r *Rayleigh) Calculate() (physics.OpticalResult, error) {
	if err := r.Validate(); err != nil {
		return physics.OpticalResult{}, physics.WrapValidation(err.(*physics.ValidationError))
	}

	x := r.SizeParameter()
	m := r.Particle.Complex() / complex(r.Medium, 0)

	// Polarizability factor F = (m² − 1)/(m² + 2)
	m2 := m * m
	factor := (m2 - 1) / (m2 + 2)

	qSca := (8.0 / 3.0) * math.Pow(x, 4) * realNormSqr(factor)
	qAbs := 4.0 * x * imag(factor)
	qExt := qSca + qAbs

	area := math.Pi * r.Radius * r.Radius

	return physics.OpticalResult{
		Wavelength: r.Wavelength,
		QSca:       qSca,
		QAbs:       qAbs,
		QExt:       qExt,
		CSca:       qSca * area,
		CAbs:       qAbs * area,
		CExt:       qExt * area,
		Metadata: physics.OpticalMetadata{
			NumTerms:      1,
			Converged:     true,
			SizeParameter: x,
			Notes:         []string{"Rayleigh approximation"},
		},
	}, nil
}

// CalculateSpectrum evaluates a copy of the model at each wavelength,
// preserving input order. The first failing point aborts the whole call.
func (r *Rayleigh) CalculateSpectrum(wavelengths []float64) ([]physics.OpticalResult, error) {
	results := make([]physics.OpticalResult, 0, len(wavelengths))

	for _, wl := range wavelengths {
		point := *r
		point.Wavelength = wl

		res, err := point.Calculate()
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

// CacheKey returns a deterministic key over all four parameters.
func (r *Rayleigh) CacheKey() string {
	return fmt.Sprintf("rayleigh:r=%.9g:wl=%.9g:n=%.9g:k=%.9g:nm=%.9g",
		r.Radius, r.Wavelength, r.Particle.N, r.Particle.K, r.Medium)
}

func (r *Rayleigh) CanParallelize() bool { return true }

func (r *Rayleigh) RecommendedChunkSize() int { return 100 }

// realNormSqr is |z|² without the square root of cmplx.Abs.
func realNormSqr(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

var (
	_ physics.OpticalModel   = (*Rayleigh)(nil)
	_ physics.Cacheable      = (*Rayleigh)(nil)
	_ physics.Parallelizable = (*Rayleigh)(nil)
)
