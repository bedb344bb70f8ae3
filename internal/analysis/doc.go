// Package analysis provides spectrum characterization tools.
//
// The package includes tools for extracting features from computed
// spectra:
//
//   - [FindPeak]: global maximum of an efficiency curve
//   - [LocalMaxima]: all resonance peaks in a spectrum
//   - [FWHM]: full width at half maximum around the global peak
//   - [Integrate]: trapezoidal integral of a curve over wavelength
//
// # Resonance Detection
//
// A plasmonic resonance shows up as a peak in extinction:
//
//	peak, ok := analysis.FindPeak(results, analysis.QExt)
//	if ok {
//	    // peak.Wavelength is the resonance position
//	}
package analysis
