// SPDX-License-Identifier: MIT

package multigrid

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Residual returns r = f - A·v on the interior, where
// (A·v)[i] = -v[i-1] + 2v[i] - v[i+1]. r[0] and r[n] are zero.
// Complexity: O(n).
func Residual(v, f []float64, n int) []float64 {
	r := make([]float64, n+1)
	for i := 1; i < n; i++ {
		r[i] = f[i] - (-v[i-1] + 2*v[i] - v[i+1])
	}

	return r
}

// Correct returns v + e on interior points; boundary entries are copied
// from v unchanged. Neither input is modified.
func Correct(v, e []float64, n int) []float64 {
	out := slices.Clone(v[:n+1])
	if n > 1 {
		floats.Add(out[1:n], e[1:n])
	}

	return out
}
