package mgplot

// Test bridge: exposes unexported helpers to package mgplot_test.

// LogPointsTestOnly passes through to logPoints.
func LogPointsTestOnly(hist []float64) []float64 {
	pts := logPoints(hist)
	ys := make([]float64, len(pts))
	for i, p := range pts {
		ys[i] = p.Y
	}

	return ys
}
