// SPDX-License-Identifier: MIT

package multigrid

import "slices"

// Smooth applies nIter sweeps of weighted Jacobi relaxation to v for the
// stencil -v[i-1] + 2v[i] - v[i+1] = f[i]:
//
//	v'[i] = ω/2·v[i-1] + (1-ω)·v[i] + ω/2·v[i+1] + ω/2·f[i],   i = 1..n-1
//
// Implementation:
//   - Each sweep reads only the previous sweep's values (two buffers that
//     swap roles), never a neighbor updated in the same sweep.
//   - Boundary entries 0 and n are copied from v and never written.
//
// Inputs:
//   - v, f: fields of length n+1 (not modified).
//   - n: interval count, n ≥ 2 (not checked).
//   - nIter: sweep count; 0 returns a copy of v.
//   - omega: damping factor, stable for 0 < ω < 2.
//
// Complexity: O(nIter·n) time, O(n) memory.
func Smooth(v, f []float64, n, nIter int, omega float64) []float64 {
	a := 0.5 * omega // neighbor and source weight
	b := 1.0 - omega // center weight

	cur := slices.Clone(v[:n+1])
	if nIter <= 0 {
		return cur
	}
	next := slices.Clone(cur)

	for it := 0; it < nIter; it++ {
		for i := 1; i < n; i++ {
			next[i] = a*cur[i-1] + b*cur[i] + a*cur[i+1] + a*f[i]
		}
		cur, next = next, cur
	}

	return cur
}
