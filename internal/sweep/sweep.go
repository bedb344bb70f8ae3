// Package sweep maps single-point optical models across wavelength grids.
//
// Points are mutually independent, so the driver shards the grid across
// goroutines when the model advertises [physics.Parallelizable]; output
// order always matches input order and any failing point aborts the whole
// sweep.
package sweep

import (
	"context"
	"sync"

	"github.com/san-kum/nanocalc/internal/physics"
)

// DefaultChunkSize is used when a model carries no parallel hint.
const DefaultChunkSize = 100

// Spectrum evaluates the model at every wavelength in nm, in input order.
// Small grids and non-parallelizable models run sequentially via the
// model's own CalculateSpectrum. The context is checked before fan-out
// and after the join; in-flight points are cheap closed-form evaluations
// and are never interrupted.
func Spectrum(ctx context.Context, m physics.OpticalModel, wavelengths []float64) ([]physics.OpticalResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	chunk := DefaultChunkSize
	parallel := false
	if p, ok := m.(physics.Parallelizable); ok {
		parallel = p.CanParallelize()
		if p.RecommendedChunkSize() > 0 {
			chunk = p.RecommendedChunkSize()
		}
	}

	if !parallel || len(wavelengths) <= chunk {
		return m.CalculateSpectrum(wavelengths)
	}

	numChunks := (len(wavelengths) + chunk - 1) / chunk
	results := make([]physics.OpticalResult, len(wavelengths))
	errs := make([]error, numChunks)

	var wg sync.WaitGroup
	for c := 0; c < numChunks; c++ {
		start := c * chunk
		end := start + chunk
		if end > len(wavelengths) {
			end = len(wavelengths)
		}

		wg.Add(1)
		go func(idx, start, end int) {
			defer wg.Done()

			part, err := m.CalculateSpectrum(wavelengths[start:end])
			if err != nil {
				errs[idx] = err
				return
			}
			copy(results[start:end], part)
		}(c, start, end)
	}

	wg.Wait()

	// Lowest-index failure wins so the error is deterministic regardless
	// of goroutine scheduling.
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
