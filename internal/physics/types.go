package physics

import "math"

// PhysicsModel is the base contract every physical model satisfies.
type PhysicsModel interface {
	// Name returns a human-readable model name.
	Name() string

	// Description summarizes what the model calculates.
	Description() string

	// Validate checks input parameters before any calculation.
	// A non-nil error is always a *ValidationError.
	Validate() error

	// Warnings returns non-fatal advisories about parameter ranges.
	// Warnings never block calculation.
	Warnings() []string
}

// IsApplicable reports whether a model's parameters pass validation.
func IsApplicable(m PhysicsModel) bool {
	return m.Validate() == nil
}

// OpticalModel calculates scattering, absorption and extinction.
type OpticalModel interface {
	PhysicsModel

	// Calculate evaluates the model at its configured wavelength.
	Calculate() (OpticalResult, error)

	// CalculateSpectrum evaluates the model at each wavelength (nm),
	// returning results in input order. The first failing point aborts
	// the whole call.
	CalculateSpectrum(wavelengths []float64) ([]OpticalResult, error)
}

// ThermalModel calculates size-dependent thermal transport properties.
type ThermalModel interface {
	PhysicsModel

	Calculate() (ThermalResult, error)

	// CalculateTemperatureSweep evaluates across temperatures in K.
	CalculateTemperatureSweep(temperatures []float64) ([]ThermalResult, error)
}

// ElectronicModel calculates size-dependent electronic structure.
type ElectronicModel interface {
	PhysicsModel

	Calculate() (ElectronicResult, error)

	// CalculateSizeSweep evaluates across particle diameters in nm.
	CalculateSizeSweep(sizes []float64) ([]ElectronicResult, error)
}

// Cacheable models expose a deterministic key derived from their
// parameters, for memoization by callers. Advisory; nothing in this
// package caches.
type Cacheable interface {
	CacheKey() string
}

// Parallelizable models declare that per-point sweep work may run
// concurrently, and a recommended batch size. Advisory; nothing in this
// package spawns goroutines.
type Parallelizable interface {
	CanParallelize() bool
	RecommendedChunkSize() int
}

// OpticalResult holds the output of a single-wavelength optical
// calculation. Efficiencies are dimensionless, cross-sections in nm².
type OpticalResult struct {
	Wavelength float64         `json:"wavelength"`
	QSca       float64         `json:"q_sca"`
	QAbs       float64         `json:"q_abs"`
	QExt       float64         `json:"q_ext"`
	CSca       float64         `json:"c_sca"`
	CAbs       float64         `json:"c_abs"`
	CExt       float64         `json:"c_ext"`
	Metadata   OpticalMetadata `json:"metadata"`
}

// OpticalMetadata carries diagnostic information alongside a result.
type OpticalMetadata struct {
	// NumTerms is the series-term count, 0 if not series-based.
	NumTerms int `json:"num_terms,omitempty"`

	Converged bool `json:"converged"`

	// SizeParameter is x = 2πr/λ.
	SizeParameter float64 `json:"size_parameter"`

	Notes []string `json:"notes,omitempty"`
}

// CheckConservation returns |Q_ext − (Q_sca + Q_abs)|, a diagnostic the
// caller thresholds. It is not an error channel.
func (r OpticalResult) CheckConservation() float64 {
	return math.Abs(r.QExt - (r.QSca + r.QAbs))
}

// ThermalResult holds the output of a thermal transport calculation.
// Shape only; no thermal model is implemented yet.
type ThermalResult struct {
	Temperature     float64         `json:"temperature"`
	KappaEff        float64         `json:"kappa_eff"`
	KappaBulk       float64         `json:"kappa_bulk"`
	ReductionFactor float64         `json:"reduction_factor"`
	MFP             float64         `json:"mfp,omitempty"`
	Metadata        ThermalMetadata `json:"metadata"`
}

type ThermalMetadata struct {
	// SizeToMFPRatio is d/λ_mfp, 0 if unknown.
	SizeToMFPRatio    float64  `json:"size_to_mfp_ratio,omitempty"`
	DominantMechanism string   `json:"dominant_mechanism,omitempty"`
	Notes             []string `json:"notes,omitempty"`
}

// ConfinementRegime classifies quantum confinement strength relative to
// the exciton Bohr radius.
type ConfinementRegime string

const (
	RegimeWeak         ConfinementRegime = "weak"         // r >> a_B
	RegimeIntermediate ConfinementRegime = "intermediate" // r ≈ a_B
	RegimeStrong       ConfinementRegime = "strong"       // r << a_B
)

// ElectronicResult holds the output of an electronic structure
// calculation. Shape only; no electronic model is implemented yet.
type ElectronicResult struct {
	Diameter          float64            `json:"diameter"`
	Bandgap           float64            `json:"bandgap"`
	BulkBandgap       float64            `json:"bulk_bandgap"`
	ConfinementEnergy float64            `json:"confinement_energy"`
	CoulombCorrection float64            `json:"coulomb_correction"`
	BohrRadius        float64            `json:"bohr_radius,omitempty"`
	Regime            ConfinementRegime  `json:"regime"`
	Metadata          ElectronicMetadata `json:"metadata"`
}

type ElectronicMetadata struct {
	// EffectiveMass in units of m_e, 0 if unknown.
	EffectiveMass      float64  `json:"effective_mass,omitempty"`
	DielectricConstant float64  `json:"dielectric_constant,omitempty"`
	ModelType          string   `json:"model_type,omitempty"`
	Notes              []string `json:"notes,omitempty"`
}
