package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/nanocalc/internal/physics"
)

// gaussian builds a synthetic spectrum peaked at center with the given
// standard deviation, sampled on [from, to] with the given step.
func gaussian(from, to, step, center, sigma float64) []physics.OpticalResult {
	results := make([]physics.OpticalResult, 0)
	for w := from; w <= to+1e-9; w += step {
		v := math.Exp(-(w - center) * (w - center) / (2 * sigma * sigma))
		results = append(results, physics.OpticalResult{Wavelength: w, QExt: v})
	}
	return results
}

func TestFindPeak(t *testing.T) {
	results := gaussian(400, 700, 1, 520, 30)

	peak, ok := FindPeak(results, QExt)
	if !ok {
		t.Fatal("expected a peak")
	}
	if peak.Wavelength != 520 {
		t.Errorf("peak at %g nm, want 520", peak.Wavelength)
	}
	if math.Abs(peak.Value-1.0) > 1e-12 {
		t.Errorf("peak value = %g, want 1", peak.Value)
	}
}

func TestFindPeakEmpty(t *testing.T) {
	if _, ok := FindPeak(nil, QExt); ok {
		t.Error("expected no peak for empty spectrum")
	}
}

func TestFindPeakFirstPoint(t *testing.T) {
	results := []physics.OpticalResult{
		{Wavelength: 300, QExt: 5},
		{Wavelength: 400, QExt: 1},
	}

	peak, _ := FindPeak(results, QExt)
	if peak.Index != 0 || peak.Wavelength != 300 {
		t.Errorf("peak = %+v, want index 0 at 300 nm", peak)
	}
}

func TestLocalMaxima(t *testing.T) {
	// Two well-separated resonances.
	results := make([]physics.OpticalResult, 0)
	for w := 300.0; w <= 800; w += 1 {
		v := math.Exp(-(w-400)*(w-400)/800) + 0.5*math.Exp(-(w-650)*(w-650)/800)
		results = append(results, physics.OpticalResult{Wavelength: w, QExt: v})
	}

	peaks := LocalMaxima(results, QExt)
	if len(peaks) != 2 {
		t.Fatalf("found %d peaks, want 2", len(peaks))
	}
	if peaks[0].Wavelength != 400 {
		t.Errorf("first peak at %g nm, want 400", peaks[0].Wavelength)
	}
	if peaks[1].Wavelength != 650 {
		t.Errorf("second peak at %g nm, want 650", peaks[1].Wavelength)
	}
}

func TestLocalMaximaMonotonic(t *testing.T) {
	results := []physics.OpticalResult{
		{Wavelength: 300, QExt: 1},
		{Wavelength: 400, QExt: 2},
		{Wavelength: 500, QExt: 3},
	}

	if peaks := LocalMaxima(results, QExt); len(peaks) != 0 {
		t.Errorf("found %d peaks on a monotonic curve, want 0", len(peaks))
	}
}

func TestFWHM(t *testing.T) {
	sigma := 30.0
	results := gaussian(300, 800, 1, 550, sigma)

	width, ok := FWHM(results, QExt)
	if !ok {
		t.Fatal("expected a measurable width")
	}

	// Gaussian FWHM = 2*sqrt(2*ln 2)*sigma.
	want := 2 * math.Sqrt(2*math.Ln2) * sigma
	if math.Abs(width-want) > 1.0 {
		t.Errorf("FWHM = %g, want %g within 1 nm", width, want)
	}
}

func TestFWHMTruncated(t *testing.T) {
	// Peak near the edge: left crossing falls outside the range.
	results := gaussian(540, 800, 1, 550, 30)

	if _, ok := FWHM(results, QExt); ok {
		t.Error("expected FWHM to be unmeasurable for a truncated peak")
	}
}

func TestIntegrate(t *testing.T) {
	// Constant curve: integral is value * range.
	results := make([]physics.OpticalResult, 0)
	for w := 400.0; w <= 600; w += 10 {
		results = append(results, physics.OpticalResult{Wavelength: w, CExt: 2.5})
	}

	got := Integrate(results, CExt)
	if math.Abs(got-2.5*200) > 1e-9 {
		t.Errorf("integral = %g, want %g", got, 2.5*200)
	}
}

func TestIntegrateEmpty(t *testing.T) {
	if got := Integrate(nil, QExt); got != 0 {
		t.Errorf("integral of empty spectrum = %g, want 0", got)
	}
}
