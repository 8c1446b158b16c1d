// SPDX-License-Identifier: MIT

package multigrid

// Restrict transfers a fine-grid field onto the coarse grid with nc
// intervals by straight injection:
//
//	r2h[i] = rh[2i],   i = 1..nc-1
//
// The result has nc+1 entries with zero boundaries. rh must have at least
// 2·nc-1 entries; no averaging (full weighting) is applied.
//
// Complexity: O(nc) time and memory.
func Restrict(rh []float64, nc int) []float64 {
	r2h := make([]float64, nc+1)
	for i := 1; i < nc; i++ {
		r2h[i] = rh[2*i]
	}

	return r2h
}

// Interpolate transfers a coarse-grid field with nc intervals onto the fine
// grid (2·nc intervals) by linear interpolation:
//
//	eh[2i]   = e2h[i]
//	eh[2i+1] = (e2h[i] + e2h[i+1]) / 2,   i = 1..nc-1
//
// The result has 2·nc+1 entries. Boundaries stay zero, and so does eh[1]:
// the loop starts at i = 1, matching the transfer the solver was tuned
// against.
//
// Complexity: O(nc) time and memory.
func Interpolate(e2h []float64, nc int) []float64 {
	eh := make([]float64, 2*nc+1)
	for i := 1; i < nc; i++ {
		eh[2*i] = e2h[i]
		eh[2*i+1] = 0.5 * (e2h[i] + e2h[i+1])
	}

	return eh
}
