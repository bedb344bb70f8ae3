// Package units provides dimensioned scalar types for physical quantities.
//
// Each type is a defined float64 carrying only the conversions meaningful
// for its unit. Conversions use [constants] exclusively, so a value can
// never be mixed up with a quantity of another dimension at a call site.
package units

import "github.com/san-kum/nanocalc/internal/constants"

// Nanometer is a length in nm.
type Nanometer float64

// Micrometer is a length in µm.
type Micrometer float64

// Wavelength is an optical wavelength in nm.
type Wavelength float64

// Kelvin is an absolute temperature.
type Kelvin float64

// ElectronVolt is an energy in eV.
type ElectronVolt float64

// ThermalConductivity is in W/(m·K).
type ThermalConductivity float64

func (n Nanometer) Meters() float64 {
	return float64(n) * constants.NmToM
}

func (n Nanometer) Micrometers() Micrometer {
	return Micrometer(float64(n) * 1e-3)
}

func (m Micrometer) Nanometers() Nanometer {
	return Nanometer(float64(m) * 1e3)
}

// EnergyEV returns the photon energy E = hc/λ.
func (w Wavelength) EnergyEV() ElectronVolt {
	return ElectronVolt(constants.HcEVNm / float64(w))
}

// FrequencyHz returns the photon frequency f = c/λ.
func (w Wavelength) FrequencyHz() float64 {
	return constants.CNmS / float64(w)
}

func (k Kelvin) Celsius() float64 {
	return float64(k) - 273.15
}

func (e ElectronVolt) Joules() float64 {
	return float64(e) * constants.EVToJ
}

// PhotonWavelength returns the free-space wavelength of a photon with
// this energy, λ = hc/E.
func (e ElectronVolt) PhotonWavelength() Wavelength {
	return Wavelength(constants.HcEVNm / float64(e))
}
