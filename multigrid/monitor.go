// SPDX-License-Identifier: MIT

package multigrid

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// InfNorm returns max |v[i]| over all entries, boundaries included.
// An empty slice has norm 0.
func InfNorm(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}

	return floats.Norm(v, math.Inf(1))
}

// History is the append-only convergence record of one run.
// The zero value is ready to use.
type History struct {
	norms []float64
}

// NewHistory returns a History with room for capacity entries.
func NewHistory(capacity int) *History {
	return &History{norms: make([]float64, 0, max(capacity, 0))}
}

// Record appends one norm.
func (h *History) Record(norm float64) { h.norms = append(h.norms, norm) }

// Len returns the number of recorded entries.
func (h *History) Len() int { return len(h.norms) }

// Last returns the most recent entry, or NaN when nothing was recorded.
func (h *History) Last() float64 {
	if len(h.norms) == 0 {
		return math.NaN()
	}

	return h.norms[len(h.norms)-1]
}

// Values returns a copy of the recorded norms in order.
func (h *History) Values() []float64 { return slices.Clone(h.norms) }

// Reduction returns Last()/first entry, the overall reduction factor.
// It is NaN for an empty History and +Inf when the first entry is 0
// and the last is not.
func (h *History) Reduction() float64 {
	if len(h.norms) == 0 {
		return math.NaN()
	}
	first := h.norms[0]
	last := h.Last()
	if first == 0 {
		if last == 0 {
			return 0
		}
		return math.Inf(1)
	}

	return last / first
}
