// Package optim searches model parameter space for optimal optical
// response, e.g. the particle radius maximizing extinction at a target
// wavelength.
package optim

import (
	"context"
	"math"

	"github.com/san-kum/nanocalc/internal/physics"
)

// Objective scores one calculation; higher is better.
type Objective func(physics.OpticalResult) float64

// GridSearch exhaustively evaluates a cartesian grid of named
// parameters.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
}

func NewGridSearch(params []string, ranges [][]float64) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges}
}

// Range builds n evenly spaced values on [min, max] inclusive.
func Range(min, max float64, n int) []float64 {
	if n <= 1 {
		return []float64{min}
	}
	vals := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range vals {
		vals[i] = min + float64(i)*step
	}
	return vals
}

// Search evaluates every grid point and returns the parameters with the
// highest objective. buildModel turns a parameter assignment into a
// model; grid points whose model fails to build or calculate are
// skipped. Search returns ctx.Err when canceled mid-grid.
func (g *GridSearch) Search(
	ctx context.Context,
	buildModel func(params map[string]float64) (physics.OpticalModel, error),
	objective Objective,
) (map[string]float64, float64, error) {

	best := math.Inf(-1)
	var bestParams map[string]float64

	err := g.searchRecursive(ctx, 0, make(map[string]float64), buildModel, objective, &best, &bestParams)
	if err != nil {
		return nil, 0, err
	}

	return bestParams, best, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	buildModel func(map[string]float64) (physics.OpticalModel, error),
	objective Objective,
	best *float64,
	bestParams *map[string]float64,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.paramNames) {
		m, err := buildModel(current)
		if err != nil {
			return nil
		}

		result, err := m.Calculate()
		if err != nil {
			return nil
		}

		val := objective(result)
		if val > *best {
			*best = val
			*bestParams = make(map[string]float64)
			for k, v := range current {
				(*bestParams)[k] = v
			}
		}
		return nil
	}

	paramName := g.paramNames[depth]
	for _, val := range g.ranges[depth] {
		newParams := make(map[string]float64)
		for k, v := range current {
			newParams[k] = v
		}
		newParams[paramName] = val

		if err := g.searchRecursive(ctx, depth+1, newParams, buildModel, objective, best, bestParams); err != nil {
			return err
		}
	}
	return nil
}
