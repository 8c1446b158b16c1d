// SPDX-License-Identifier: MIT

package multigrid

import "math"

// GridPoints returns the n+1 coordinates x_i = i/n of the unit interval.
func GridPoints(n int) []float64 {
	x := make([]float64, n+1)
	for i := range x {
		x[i] = float64(i) / float64(n)
	}

	return x
}

// SineModes returns the field v[i] = mean_k sin(k·π·i/n) over the given
// wave numbers, i = 0..n. SineModes(64, 16, 40) is the reference initial
// guess 0.5·(sin(16πi/64) + sin(40πi/64)). With no modes the field is zero.
func SineModes(n int, modes ...int) []float64 {
	v := make([]float64, n+1)
	if len(modes) == 0 {
		return v
	}
	w := 1.0 / float64(len(modes))
	for i := range v {
		var sum float64
		for _, k := range modes {
			sum += math.Sin(float64(i) * float64(k) * math.Pi / float64(n))
		}
		v[i] = w * sum
	}

	return v
}
