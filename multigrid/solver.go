// SPDX-License-Identifier: MIT

package multigrid

import (
	"log/slog"
	"slices"
)

// Solver drives repeated FMG iterations for one validated Config.
// It holds no mutable state after construction; one Solver can serve any
// number of sequential or concurrent Solve calls.
type Solver struct {
	cfg  Config
	opts Options
}

// NewSolver validates cfg and applies opts.
//
// Errors:
//   - ErrDepth, ErrGridSize, ErrOmega, ErrIterations (all match ErrConfiguration).
func NewSolver(cfg Config, opts ...Option) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Solver{cfg: cfg, opts: gatherOptions(opts...)}, nil
}

// Config returns the validated configuration.
func (s *Solver) Config() Config { return s.cfg }

// Step runs one FMG iteration on (v, f) after checking their lengths.
func (s *Solver) Step(v, f []float64) ([]float64, error) {
	if err := s.checkFields(v, f); err != nil {
		return nil, err
	}
	c := s.cfg

	return FMGStep(v, f, c.N, c.NLevel, c.NCoarse, c.Omega, c.VIter), nil
}

// Solve runs up to Config.NCycle FMG iterations starting from v with right-
// hand side f and records the monitored norm before the first iteration and
// after each one.
//
// Implementation:
//   - Stage 1: validate len(v) == len(f) == N+1.
//   - Stage 2: record the initial norm (history entry 0).
//   - Stage 3: loop; stop after NCycle steps, or earlier once the last
//     recorded norm is ≤ the WithTolerance value (when > 0).
//
// v and f are not modified. Divergence or NaN never produce an error; they
// show up in Result.History.
func (s *Solver) Solve(v, f []float64) (*Result, error) {
	if err := s.checkFields(v, f); err != nil {
		return nil, err
	}
	c := s.cfg
	log := s.opts.logger

	vh := slices.Clone(v)
	fh := slices.Clone(f)

	hist := NewHistory(c.NCycle + 1)
	s.record(hist, 0, vh, fh)
	log.Info("multigrid: solve started",
		slog.Int("n", c.N),
		slog.Float64("omega", c.Omega),
		slog.Int("n_level", c.NLevel),
		slog.Int("n_coarse", c.NCoarse),
		slog.Int("v_iter", c.VIter),
		slog.Int("n_cycle", c.NCycle),
		slog.String("monitor", s.opts.monitor.String()),
		slog.Float64("initial_norm", hist.Last()),
	)

	cycles := 0
	for cycles < c.NCycle && !s.reached(hist.Last()) {
		vh = FMGStep(vh, fh, c.N, c.NLevel, c.NCoarse, c.Omega, c.VIter)
		cycles++
		s.record(hist, cycles, vh, fh)
	}

	res := &Result{
		Field:     vh,
		History:   hist.Values(),
		Cycles:    cycles,
		Converged: s.reached(hist.Last()),
	}
	log.Info("multigrid: solve finished",
		slog.Int("cycles", res.Cycles),
		slog.Float64("final_norm", hist.Last()),
		slog.Float64("reduction", hist.Reduction()),
		slog.Bool("converged", res.Converged),
	)

	return res, nil
}

func (s *Solver) checkFields(v, f []float64) error {
	if err := ValidateFieldLength("v", v, s.cfg.N); err != nil {
		return err
	}

	return ValidateFieldLength("f", f, s.cfg.N)
}

// reached reports whether norm satisfies a configured tolerance.
func (s *Solver) reached(norm float64) bool {
	return s.opts.tol > 0 && norm <= s.opts.tol
}

// record measures the monitored quantity, appends it and notifies.
func (s *Solver) record(hist *History, cycle int, vh, fh []float64) {
	var norm float64
	switch s.opts.monitor {
	case MonitorResidual:
		norm = InfNorm(Residual(vh, fh, s.cfg.N))
	default:
		norm = InfNorm(vh)
	}
	hist.Record(norm)

	s.opts.logger.Debug("multigrid: cycle", slog.Int("cycle", cycle), slog.Float64("norm", norm))
	if s.opts.observer != nil {
		s.opts.observer(cycle, norm)
	}
}
