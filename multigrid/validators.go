// SPDX-License-Identifier: MIT
// Package: multigrid
//
// Purpose:
//  - Single source of truth for the fail-fast checks run before any kernel.
//  - Kernels stay branch-free; NewSolver and Solve call these once.
//
// Note:
//  - Config.Validate runs depth → grid size → omega → iterations, so the
//    first reported failure is deterministic.

package multigrid

import "math"

// maxDepth keeps 1<<depth well inside int range.
const maxDepth = 30

// ValidateDepth checks 0 ≤ nLevel ≤ nCoarse ≤ maxDepth.
// A V-cycle entered above nCoarse would never reach the coarse grid, hence
// nLevel ≤ nCoarse.
func ValidateDepth(nLevel, nCoarse int) error {
	if nLevel < 0 {
		return configErrorf("nLevel", nLevel, ErrDepth)
	}
	if nCoarse < 0 || nCoarse > maxDepth {
		return configErrorf("nCoarse", nCoarse, ErrDepth)
	}
	if nLevel > nCoarse {
		return configErrorf("nLevel", nLevel, ErrDepth)
	}

	return nil
}

// ValidateGridSize checks that n halves exactly depth times and that the
// coarsest grid still has an interior point (≥ 2 intervals).
// Assumes depth already passed ValidateDepth.
func ValidateGridSize(n, depth int) error {
	if n < 2 {
		return configErrorf("n", n, ErrGridSize)
	}
	if n%(1<<depth) != 0 {
		return configErrorf("n", n, ErrGridSize)
	}
	if n>>depth < 2 {
		return configErrorf("n", n, ErrGridSize)
	}

	return nil
}

// ValidateOmega checks 0 < omega < 2, the stable range of damped Jacobi
// for the 3-point stencil.
func ValidateOmega(omega float64) error {
	if math.IsNaN(omega) || omega <= 0 || omega >= 2 {
		return configErrorf("omega", omega, ErrOmega)
	}

	return nil
}

// ValidateIterations checks vIter ≥ 1 and nCycle ≥ 0.
func ValidateIterations(vIter, nCycle int) error {
	if vIter < 1 {
		return configErrorf("vIter", vIter, ErrIterations)
	}
	if nCycle < 0 {
		return configErrorf("nCycle", nCycle, ErrIterations)
	}

	return nil
}

// ValidateFieldLength checks len(v) == n+1. name labels the error.
func ValidateFieldLength(name string, v []float64, n int) error {
	if len(v) != n+1 {
		return configErrorf(name, len(v), ErrFieldLength)
	}

	return nil
}

// Validate runs every Config check in a fixed order.
func (c Config) Validate() error {
	if err := ValidateDepth(c.NLevel, c.NCoarse); err != nil {
		return err
	}
	if err := ValidateGridSize(c.N, c.NCoarse); err != nil {
		return err
	}
	if err := ValidateOmega(c.Omega); err != nil {
		return err
	}

	return ValidateIterations(c.VIter, c.NCycle)
}
