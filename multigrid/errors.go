// SPDX-License-Identifier: MIT
// Package multigrid: sentinel error set.
// Kernels (Smooth, Residual, Restrict, Interpolate, VCycle, FMGStep) never
// return errors. Everything user-triggered is rejected up front by the
// validators with one of the sentinels below; tests match them via errors.Is.

package multigrid

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "multigrid: ...". Each specific sentinel
// wraps ErrConfiguration, so errors.Is(err, ErrConfiguration) matches any
// configuration failure while errors.Is(err, ErrOmega) narrows it down.

// ErrConfiguration is the root of every configuration failure.
var ErrConfiguration = errors.New("multigrid: invalid configuration")

var (
	// ErrGridSize: n < 2, n not divisible by 2^depth, or the coarsest grid
	// would have fewer than two intervals.
	ErrGridSize = fmt.Errorf("%w: grid size incompatible with hierarchy depth", ErrConfiguration)

	// ErrOmega: damping factor NaN or outside the open interval (0, 2).
	ErrOmega = fmt.Errorf("%w: omega must lie in (0, 2)", ErrConfiguration)

	// ErrDepth: negative level counts, or nLevel > nCoarse.
	ErrDepth = fmt.Errorf("%w: invalid hierarchy depth", ErrConfiguration)

	// ErrIterations: vIter < 1 or nCycle < 0.
	ErrIterations = fmt.Errorf("%w: invalid iteration count", ErrConfiguration)

	// ErrFieldLength: a field slice does not have n+1 entries.
	ErrFieldLength = fmt.Errorf("%w: field length must be n+1", ErrConfiguration)
)

// ConfigurationError names the offending parameter and its value.
// It unwraps to one of the sentinels above.
type ConfigurationError struct {
	Param string
	Value any
	Err   error
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v (%s=%v)", e.Err, e.Param, e.Value)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// configErrorf builds a *ConfigurationError; used by every validator so the
// message layout stays uniform.
func configErrorf(param string, value any, err error) error {
	return &ConfigurationError{Param: param, Value: value, Err: err}
}
