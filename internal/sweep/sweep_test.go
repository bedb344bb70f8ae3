package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/nanocalc/internal/models"
	"github.com/san-kum/nanocalc/internal/physics"
)

func grid(from, to, step float64) []float64 {
	var wls []float64
	for wl := from; wl <= to; wl += step {
		wls = append(wls, wl)
	}
	return wls
}

func TestSpectrumMatchesSequential(t *testing.T) {
	m := models.NewRayleigh(50, 500, physics.RefractiveIndex{N: 0.5, K: 2.5}, 1.33)

	// 301 points, forcing the parallel path past the 100-point chunk.
	wls := grid(300, 900, 2)
	if len(wls) <= m.RecommendedChunkSize() {
		t.Fatalf("grid too small to exercise parallel path: %d points", len(wls))
	}

	parallel, err := Spectrum(context.Background(), m, wls)
	if err != nil {
		t.Fatalf("parallel sweep failed: %v", err)
	}

	sequential, err := m.CalculateSpectrum(wls)
	if err != nil {
		t.Fatalf("sequential sweep failed: %v", err)
	}

	if len(parallel) != len(sequential) {
		t.Fatalf("length mismatch: %d vs %d", len(parallel), len(sequential))
	}
	for i := range parallel {
		p, s := parallel[i], sequential[i]
		if p.Wavelength != s.Wavelength || p.QSca != s.QSca || p.QAbs != s.QAbs ||
			p.QExt != s.QExt || p.CSca != s.CSca || p.CAbs != s.CAbs || p.CExt != s.CExt {
			t.Fatalf("point %d differs: %+v vs %+v", i, p, s)
		}
	}
}

func TestSpectrumPreservesOrder(t *testing.T) {
	m := models.NewRayleigh(50, 500, physics.RefractiveIndex{N: 1.5}, 1.0)

	wls := grid(200, 2000, 5)
	results, err := Spectrum(context.Background(), m, wls)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	for i, wl := range wls {
		if results[i].Wavelength != wl {
			t.Fatalf("point %d: expected wavelength %f, got %f", i, wl, results[i].Wavelength)
		}
	}
}

func TestSpectrumSmallGridSequential(t *testing.T) {
	m := models.NewRayleigh(50, 500, physics.RefractiveIndex{N: 1.5}, 1.0)

	results, err := Spectrum(context.Background(), m, []float64{300, 400, 500})
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
}

func TestSpectrumAllOrNothing(t *testing.T) {
	m := models.NewRayleigh(50, 500, physics.RefractiveIndex{N: 1.5}, 1.0)

	// Large grid with one poisoned point in a late chunk.
	wls := grid(300, 900, 2)
	wls[250] = -1

	results, err := Spectrum(context.Background(), m, wls)
	if err == nil {
		t.Fatal("expected error from poisoned point")
	}
	if results != nil {
		t.Error("expected no partial results")
	}
	if !errors.Is(err, physics.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestSpectrumCanceledContext(t *testing.T) {
	m := models.NewRayleigh(50, 500, physics.RefractiveIndex{N: 1.5}, 1.0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Spectrum(ctx, m, grid(300, 900, 2)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

type sequentialOnly struct {
	*models.Rayleigh
}

func (s sequentialOnly) CanParallelize() bool { return false }

func TestSpectrumHonorsParallelHint(t *testing.T) {
	m := sequentialOnly{models.NewRayleigh(50, 500, physics.RefractiveIndex{N: 1.5}, 1.0)}

	wls := grid(300, 900, 2)
	results, err := Spectrum(context.Background(), m, wls)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(results) != len(wls) {
		t.Fatalf("expected %d results, got %d", len(wls), len(results))
	}
}
