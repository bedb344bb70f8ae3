package analysis

import (
	"github.com/san-kum/nanocalc/internal/physics"
)

// Value extracts one quantity from a result, selecting which curve an
// analysis runs on.
type Value func(physics.OpticalResult) float64

var (
	QSca Value = func(r physics.OpticalResult) float64 { return r.QSca }
	QAbs Value = func(r physics.OpticalResult) float64 { return r.QAbs }
	QExt Value = func(r physics.OpticalResult) float64 { return r.QExt }
	CExt Value = func(r physics.OpticalResult) float64 { return r.CExt }
)

// Peak is a local or global maximum of a spectrum.
type Peak struct {
	Wavelength float64
	Value      float64
	Index      int
}

// FindPeak returns the global maximum of the selected curve. The second
// return is false for an empty spectrum.
func FindPeak(results []physics.OpticalResult, value Value) (Peak, bool) {
	if len(results) == 0 {
		return Peak{}, false
	}

	best := Peak{Wavelength: results[0].Wavelength, Value: value(results[0])}
	for i, r := range results[1:] {
		if v := value(r); v > best.Value {
			best = Peak{Wavelength: r.Wavelength, Value: v, Index: i + 1}
		}
	}

	return best, true
}

// LocalMaxima returns every interior point strictly greater than both
// neighbors, in wavelength order. Endpoints are never reported.
func LocalMaxima(results []physics.OpticalResult, value Value) []Peak {
	peaks := make([]Peak, 0)

	for i := 1; i < len(results)-1; i++ {
		v := value(results[i])
		if v > value(results[i-1]) && v > value(results[i+1]) {
			peaks = append(peaks, Peak{
				Wavelength: results[i].Wavelength,
				Value:      v,
				Index:      i,
			})
		}
	}

	return peaks
}

// FWHM returns the full width at half maximum around the global peak,
// with linear interpolation between grid points. The second return is
// false when either half-maximum crossing lies outside the sampled
// range, so the width cannot be determined.
func FWHM(results []physics.OpticalResult, value Value) (float64, bool) {
	peak, ok := FindPeak(results, value)
	if !ok || len(results) < 3 {
		return 0, false
	}

	half := peak.Value / 2

	// Walk left from the peak to the half-maximum crossing.
	left := -1.0
	for i := peak.Index; i > 0; i-- {
		lo, hi := value(results[i-1]), value(results[i])
		if lo <= half && hi >= half {
			left = crossing(results[i-1].Wavelength, results[i].Wavelength, lo, hi, half)
			break
		}
	}

	right := -1.0
	for i := peak.Index; i < len(results)-1; i++ {
		hi, lo := value(results[i]), value(results[i+1])
		if hi >= half && lo <= half {
			right = crossing(results[i].Wavelength, results[i+1].Wavelength, hi, lo, half)
			break
		}
	}

	if left < 0 || right < 0 {
		return 0, false
	}

	return right - left, true
}

// crossing interpolates the wavelength where the curve passes level
// between two samples.
func crossing(w0, w1, v0, v1, level float64) float64 {
	if v1 == v0 {
		return w0
	}
	return w0 + (level-v0)/(v1-v0)*(w1-w0)
}

// Integrate returns the trapezoidal integral of the selected curve over
// wavelength. For cross-sections the result is in nm²·nm.
func Integrate(results []physics.OpticalResult, value Value) float64 {
	sum := 0.0
	for i := 1; i < len(results); i++ {
		dw := results[i].Wavelength - results[i-1].Wavelength
		sum += 0.5 * (value(results[i]) + value(results[i-1])) * dw
	}
	return sum
}
