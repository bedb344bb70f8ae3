package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/nanocalc/internal/models"
	"github.com/san-kum/nanocalc/internal/physics"
)

func sampleSpectrum(t *testing.T) []physics.OpticalResult {
	t.Helper()

	m := models.NewRayleigh(50, 500, physics.RefractiveIndex{N: 0.47, K: 2.4}, 1.33)
	results, err := m.CalculateSpectrum([]float64{400, 450, 500, 550, 600})
	if err != nil {
		t.Fatalf("spectrum failed: %v", err)
	}
	return results
}

func TestExtract(t *testing.T) {
	results := sampleSpectrum(t)

	qext := Extract(results, QExt)
	if len(qext) != len(results) {
		t.Fatalf("expected %d values, got %d", len(results), len(qext))
	}
	for i := range results {
		if qext[i] != results[i].QExt {
			t.Errorf("point %d: expected %f, got %f", i, results[i].QExt, qext[i])
		}
	}
}

func TestPlotSpectrum(t *testing.T) {
	out := PlotSpectrum(sampleSpectrum(t), QExt, 60, 8)

	if out == "" {
		t.Fatal("expected non-empty plot")
	}
	if !strings.Contains(out, "q_ext") {
		t.Error("caption missing quantity name")
	}
	if !strings.Contains(out, "400") || !strings.Contains(out, "600") {
		t.Error("caption missing wavelength range")
	}
}

func TestPlotSpectrumEmpty(t *testing.T) {
	if out := PlotSpectrum(nil, QExt, 60, 8); out != "" {
		t.Error("expected empty plot for no data")
	}
}

func TestSparkline(t *testing.T) {
	line := Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 8)
	if line == "" {
		t.Error("expected non-empty sparkline")
	}

	flat := Sparkline(nil, 10)
	if !strings.Contains(flat, "─") {
		t.Error("expected rule for empty data")
	}
}

func TestSparklineKeepsNarrowPeak(t *testing.T) {
	// A single-point resonance in a dense grid must survive the squeeze
	// to a few cells: its bucket average is raised above the baseline.
	values := make([]float64, 100)
	values[37] = 10

	line := Sparkline(values, 10)
	if !strings.Contains(line, "█") {
		t.Errorf("expected the peak's cell to render full height: %q", line)
	}
}

func TestSeparator(t *testing.T) {
	sep := Separator(20)
	if !strings.Contains(sep, "─") {
		t.Errorf("expected a rule, got %q", sep)
	}

	if out := Separator(1); out != "" {
		t.Errorf("expected empty rule for width 1, got %q", out)
	}
}
