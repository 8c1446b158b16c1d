package multigrid_test

import (
	"testing"

	"github.com/katalvlaran/lvmg/multigrid"
)

// benchmarkFMGStep runs one FMG iteration per b.N on the reference field.
func benchmarkFMGStep(b *testing.B, n, depth int) {
	v := multigrid.SineModes(n, 16, 40)
	f := make([]float64, n+1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = multigrid.FMGStep(v, f, n, depth, depth, 2.0/3.0, 1)
	}
}

func BenchmarkFMGStep_64(b *testing.B)   { benchmarkFMGStep(b, 64, 4) }
func BenchmarkFMGStep_1024(b *testing.B) { benchmarkFMGStep(b, 1024, 8) }

// BenchmarkSmooth_1024 measures three Jacobi sweeps on 1025 points.
func BenchmarkSmooth_1024(b *testing.B) {
	const n = 1024
	v := multigrid.SineModes(n, 3, 17)
	f := make([]float64, n+1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = multigrid.Smooth(v, f, n, multigrid.PreSweeps, 2.0/3.0)
	}
}
