// Package constants holds the physical constants table (CODATA 2018).
//
// All values are SI unless the name says otherwise. Every unit conversion
// in the repository goes through this table; nothing else hardcodes
// physical values.
package constants

import "math"

const (
	C     = 2.99792458e8      // speed of light in vacuum (m/s)
	CNmS  = 2.99792458e17     // speed of light (nm/s)
	H     = 6.62607015e-34    // Planck constant (J·s)
	Hbar  = 1.054571817e-34   // reduced Planck constant (J·s)
	KB    = 1.380649e-23      // Boltzmann constant (J/K)
	E     = 1.602176634e-19   // elementary charge (C)
	Me    = 9.1093837015e-31  // electron mass (kg)
	Mp    = 1.67262192369e-27 // proton mass (kg)
	NA    = 6.02214076e23     // Avogadro constant (1/mol)
	Eps0  = 8.8541878128e-12  // vacuum permittivity (F/m)
	Mu0   = 1.25663706212e-6  // vacuum permeability (H/m)
	Alpha = 7.2973525693e-3   // fine structure constant (dimensionless)
	Ry    = 13.605693122994   // Rydberg constant (eV)

	BohrRadius   = 5.29177210903e-11 // Bohr radius (m)
	BohrRadiusNm = 0.05291772109     // Bohr radius (nm)
)

// Conversion factors derived from the table above.
const (
	EVToJ   = 1.602176634e-19   // electron volt to joule
	JToEV   = 6.241509074e18    // joule to electron volt
	NmToM   = 1e-9              // nanometer to meter
	MToNm   = 1e9               // meter to nanometer
	HcEVNm  = 1239.84193        // h·c product in eV·nm (photon energy)
	AmuToKg = 1.66053906660e-27 // atomic mass unit to kg
)

const (
	KBT300KEV = 0.02585  // thermal energy at 300 K (eV)
	KBT300KJ  = 4.14e-21 // thermal energy at 300 K (J)
)

// ThermalDeBroglieNm returns the thermal de Broglie wavelength at 300 K
// in nm for a particle of the given mass in kg.
func ThermalDeBroglieNm(massKg float64) float64 {
	lambda := H / math.Sqrt(2.0*math.Pi*massKg*KB*300.0)
	return lambda * MToNm
}

// PlasmaWavelengthNm converts a plasma energy in eV to the corresponding
// free-space wavelength in nm.
func PlasmaWavelengthNm(omegaPEV float64) float64 {
	return HcEVNm / omegaPEV
}
