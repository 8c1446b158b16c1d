// Package lvmg is a small, dependable toolkit for 1-D geometric multigrid:
// solving the discrete Poisson problem (minus the second derivative of u
// equals f) on a uniform grid and inspecting how fast the error goes away.
//
// What is inside:
//
//	multigrid/    weighted Jacobi smoothing, injection / linear transfers,
//	              recursive V-cycles, the Full Multigrid driver and a
//	              validated Solver loop with convergence history.
//	fieldio/      read/write "nx ny re" + "x y value" text field files.
//	mgplot/       convergence and profile plots (gonum/plot).
//	cmd/fmgsolve  CLI wiring all of the above.
//
// Why:
//
//   - Deterministic: pure functions over []float64, no global state.
//   - Explicit ownership: every operator returns a fresh slice.
//   - Fail fast: grid sizes that cannot be halved and unstable damping
//     factors are rejected before any work is done.
//
// Quick start:
//
//	cfg := multigrid.DefaultConfig()          // n=64, ω=2/3, 4 levels
//	s, _ := multigrid.NewSolver(cfg)
//	res, _ := s.Solve(multigrid.SineModes(cfg.N, 16, 40), make([]float64, cfg.N+1))
//	// res.History[k] = ‖v‖∞ after k FMG iterations
//
//	go get github.com/katalvlaran/lvmg
package lvmg
