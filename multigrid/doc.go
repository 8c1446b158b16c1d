// Package multigrid solves the 1-D discrete Poisson problem
//
//	-v[i-1] + 2·v[i] - v[i+1] = f[i],   i = 1..n-1
//
// on a uniform grid of n+1 points with geometric multigrid.
//
// What:
//
//   - Smooth:      weighted (damped) Jacobi relaxation over interior points.
//   - Residual:    r = f - A·v for the 3-point stencil above.
//   - Restrict:    fine → coarse transfer by straight injection.
//   - Interpolate: coarse → fine transfer by linear interpolation.
//   - VCycle:      recursive smooth / restrict / solve / correct pass down to
//     a fixed coarsest level.
//   - FMGStep:     one Full Multigrid iteration: residual hierarchy, nested
//     V-cycles from the coarsest level upward, fine-grid correction.
//   - Solver:      validated Config + outer loop recording ‖v‖∞ per cycle.
//
// Boundaries:
//
//	Indices 0 and n are Dirichlet boundary points. No interior operator ever
//	writes them: Smooth and Correct carry the caller's boundary values through,
//	Residual, Restrict and Interpolate leave them at zero.
//
// Ownership:
//
//	Every operator returns a freshly allocated slice and never mutates its
//	inputs, so fields can be passed across levels without aliasing.
//
// Errors:
//
//	The numeric kernels have no error path; they assume consistent sizes.
//	NewSolver and Solver.Solve validate everything up front and return errors
//	matching ErrConfiguration (ErrGridSize, ErrOmega, ErrDepth, ErrIterations,
//	ErrFieldLength).
//
// Complexity:
//
//   - Smooth, Residual, Restrict, Interpolate, Correct: O(n) time and memory.
//   - VCycle: O(n) per call (geometric series over levels).
//   - FMGStep: O(vIter·n·(nLevel+1)) time.
//
// Usage:
//
//	cfg := multigrid.DefaultConfig()
//	s, err := multigrid.NewSolver(cfg)
//	if err != nil {
//		// errors.Is(err, multigrid.ErrConfiguration)
//	}
//	v := multigrid.SineModes(cfg.N, 16, 40)
//	res, err := s.Solve(v, make([]float64, cfg.N+1))
//	fmt.Println(res.History[len(res.History)-1])
package multigrid
