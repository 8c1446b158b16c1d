// SPDX-License-Identifier: MIT

package multigrid

// Fixed sweep counts of one V-cycle visit.
const (
	// PreSweeps is the number of Jacobi sweeps applied on entry to a level.
	PreSweeps = 3

	// PostSweeps is the number of Jacobi sweeps applied before returning
	// from a level, and also the extra sweeps applied before the residual
	// is restricted on non-coarsest levels.
	PostSweeps = 3
)

// Reference driver parameters used by DefaultConfig.
const (
	DefaultN      = 64
	DefaultOmega  = 2.0 / 3.0
	DefaultNLevel = 4
	DefaultVIter  = 1
	DefaultNCycle = 1000
)

// Config is the immutable parameter record of one multigrid run.
//
// Fields:
//   - N: interval count of the finest grid (N+1 points).
//   - Omega: Jacobi damping factor, (0, 2).
//   - NLevel: number of coarsening steps of the FMG right-hand-side hierarchy.
//   - NCoarse: level index at which V-cycles stop recursing (NLevel ≤ NCoarse).
//   - VIter: V-cycles per FMG level.
//   - NCycle: outer FMG iterations.
type Config struct {
	N       int     `yaml:"n"`
	Omega   float64 `yaml:"omega"`
	NLevel  int     `yaml:"n_level"`
	NCoarse int     `yaml:"n_coarse"`
	VIter   int     `yaml:"v_iter"`
	NCycle  int     `yaml:"n_cycle"`
}

// DefaultConfig returns the reference scenario: n=64, ω=2/3,
// nLevel=nCoarse=4, one V-cycle per level, 1000 outer cycles.
func DefaultConfig() Config {
	return Config{
		N:       DefaultN,
		Omega:   DefaultOmega,
		NLevel:  DefaultNLevel,
		NCoarse: DefaultNLevel,
		VIter:   DefaultVIter,
		NCycle:  DefaultNCycle,
	}
}

// CoarsestPoints returns the interval count at level NCoarse.
// Only meaningful for a validated Config.
func (c Config) CoarsestPoints() int { return c.N >> c.NCoarse }

// Monitor selects what the convergence history measures.
type Monitor int

const (
	// MonitorField records ‖v‖∞ of the current field (reference behavior;
	// for f = 0 this is the error norm).
	MonitorField Monitor = iota

	// MonitorResidual records ‖f - A·v‖∞.
	MonitorResidual
)

// String implements fmt.Stringer.
func (m Monitor) String() string {
	switch m {
	case MonitorField:
		return "field"
	case MonitorResidual:
		return "residual"
	default:
		return "unknown"
	}
}

// Result is the outcome of Solver.Solve.
type Result struct {
	// Field is the final approximation, length N+1.
	Field []float64

	// History holds one norm per recorded state, starting with the initial
	// field: len(History) == Cycles+1.
	History []float64

	// Cycles is the number of FMG iterations actually run. It equals
	// Config.NCycle unless a tolerance stopped the loop early.
	Cycles int

	// Converged reports whether a configured tolerance was reached.
	Converged bool
}
