// SPDX-License-Identifier: MIT

package multigrid

// ResidualHierarchy computes the fine residual of (vh, fh) and restricts it
// nLevel times. The result has nLevel+1 entries ordered finest-first;
// entry k has n/2^k + 1 points.
//
// Complexity: O(n) time and memory (geometric series).
func ResidualHierarchy(vh, fh []float64, n, nLevel int) [][]float64 {
	rr := make([][]float64, 0, nLevel+1)

	rh := Residual(vh, fh, n)
	rr = append(rr, rh)

	m := n
	for k := 0; k < nLevel; k++ {
		m /= 2
		rh = Restrict(rh, m)
		rr = append(rr, rh)
	}

	return rr
}

// FMGError solves A·e = rr[0] approximately by nested iteration.
//
// Algorithm:
//   - Start from a zero error on the coarsest hierarchy level (n/2^nLevel
//     intervals).
//   - For kLevel = nLevel down to 0: interpolate the current estimate onto
//     level kLevel (skipped on the first, coarsest pass), then run vIter
//     V-cycles against rr[kLevel], each recursing down to nCoarse.
//
// Returns the fine-level error estimate (n+1 points, zero boundaries).
func FMGError(n int, rr [][]float64, nLevel, nCoarse int, omega float64, vIter int) []float64 {
	exh := make([]float64, n>>nLevel+1)

	for kLevel := nLevel; kLevel >= 0; kLevel-- {
		kPoint := n >> kLevel
		if kLevel != nLevel {
			exh = Interpolate(exh, kPoint/2)
		}
		for it := 0; it < vIter; it++ {
			exh = VCycle(exh, rr[kLevel], kPoint, kLevel, nCoarse, omega)
		}
	}

	return exh
}

// FMGStep runs one outer Full Multigrid iteration: it rebuilds the
// right-hand-side hierarchy from (vh, fh), computes the FMG error estimate
// and returns vh corrected by it on interior points. vh and fh are not
// modified. Call it repeatedly to drive convergence; a single call is not an
// exact solve.
func FMGStep(vh, fh []float64, n, nLevel, nCoarse int, omega float64, vIter int) []float64 {
	rr := ResidualHierarchy(vh, fh, n, nLevel)
	eh := FMGError(n, rr, nLevel, nCoarse, omega, vIter)

	return Correct(vh, eh, n)
}
