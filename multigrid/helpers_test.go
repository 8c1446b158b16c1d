package multigrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmg/multigrid"
)

const epsTight = 1e-12

// referenceField is the initial guess of the reference driver:
// 0.5·(sin(16πi/64) + sin(40πi/64)).
func referenceField(n int) []float64 { return multigrid.SineModes(n, 16, 40) }

// poissonRHS samples h²·π²·sin(πx), whose continuous solution is sin(πx).
func poissonRHS(n int) []float64 {
	h := 1.0 / float64(n)
	f := make([]float64, n+1)
	for i := range f {
		f[i] = h * h * math.Pi * math.Pi * math.Sin(math.Pi*float64(i)*h)
	}

	return f
}

// exactSolve solves the interior system -u[i-1] + 2u[i] - u[i+1] = f[i]
// with u[0] = u[n] = 0 densely with gonum; the reference every multigrid
// result is compared against.
func exactSolve(t *testing.T, f []float64, n int) []float64 {
	t.Helper()

	m := n - 1
	a := mat.NewDense(m, m, nil)
	for i := 0; i < m; i++ {
		a.Set(i, i, 2)
		if i > 0 {
			a.Set(i, i-1, -1)
		}
		if i < m-1 {
			a.Set(i, i+1, -1)
		}
	}
	b := mat.NewVecDense(m, append([]float64(nil), f[1:n]...))

	var x mat.VecDense
	require.NoError(t, x.SolveVec(a, b), "dense reference solve")

	u := make([]float64, n+1)
	for i := 0; i < m; i++ {
		u[i+1] = x.AtVec(i)
	}

	return u
}

// maxAbsDiff returns max |a[i]-b[i]|.
func maxAbsDiff(t *testing.T, a, b []float64) float64 {
	t.Helper()
	require.Len(t, b, len(a))

	var d float64
	for i := range a {
		d = math.Max(d, math.Abs(a[i]-b[i]))
	}

	return d
}

// requireBoundaries checks out[0] and out[n] against the wanted values exactly.
func requireBoundaries(t *testing.T, out []float64, left, right float64) {
	t.Helper()
	require.NotEmpty(t, out)
	require.Equal(t, left, out[0], "left boundary")
	require.Equal(t, right, out[len(out)-1], "right boundary")
}
