// SPDX-License-Identifier: MIT

package multigrid

// IsCoarseGrid reports whether level is the terminal level of a V-cycle.
func IsCoarseGrid(level, nCoarse int) bool { return level == nCoarse }

// VCycle performs one V-cycle on A·v = f starting at the given level.
//
// Algorithm:
//  1. PreSweeps Jacobi sweeps.
//  2. Unless level == nCoarse: PostSweeps more sweeps, residual, inject it
//     onto n/2 intervals, solve A·e = r there by a recursive VCycle at
//     level+1 from a zero guess, interpolate e back and add it to the
//     interior of v.
//  3. PostSweeps Jacobi sweeps.
//
// vh and fh have n+1 entries and are not modified. n must be divisible by
// 2^(nCoarse-level) with at least 2 intervals left at nCoarse; that is
// checked by Config.Validate, not here.
//
// Complexity: O(n) time per call; recursion depth nCoarse-level.
func VCycle(vh, fh []float64, n, level, nCoarse int, omega float64) []float64 {
	vh = Smooth(vh, fh, n, PreSweeps, omega)

	if !IsCoarseGrid(level, nCoarse) {
		vh = Smooth(vh, fh, n, PostSweeps, omega)

		nc := n / 2
		rh := Residual(vh, fh, n)
		f2h := Restrict(rh, nc)
		v2h := VCycle(make([]float64, nc+1), f2h, nc, level+1, nCoarse, omega)
		eh := Interpolate(v2h, nc)
		vh = Correct(vh, eh, n)
	}

	return Smooth(vh, fh, n, PostSweeps, omega)
}
