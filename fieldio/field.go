package fieldio

import "slices"

// Field is a scalar field on an (NX+1)×(NY+1) structured grid.
// Point (i, j) is stored at index j·(NX+1) + i of X, Y and Values.
type Field struct {
	NX, NY int
	Re     float64 // Reynolds number recorded in the header; 0 when unused
	X, Y   []float64
	Values []float64
}

// FromProfile wraps a 1-D profile as a field with NY = 0 and Y ≡ 0.
// x and v are copied; they must have equal length ≥ 1.
func FromProfile(x, v []float64, re float64) (*Field, error) {
	if len(x) == 0 || len(x) != len(v) {
		return nil, ErrPointCount
	}

	return &Field{
		NX:     len(x) - 1,
		NY:     0,
		Re:     re,
		X:      slices.Clone(x),
		Y:      make([]float64, len(x)),
		Values: slices.Clone(v),
	}, nil
}

// Points returns (NX+1)·(NY+1).
func (f *Field) Points() int { return (f.NX + 1) * (f.NY + 1) }

// Validate checks non-negative extents and that every slice holds Points() entries.
func (f *Field) Validate() error {
	if f.NX < 0 || f.NY < 0 || overflows(f.NX, f.NY) {
		return ErrHeader
	}
	p := f.Points()
	if len(f.X) != p || len(f.Y) != p || len(f.Values) != p {
		return ErrPointCount
	}

	return nil
}

// At returns the value at grid point (i, j).
func (f *Field) At(i, j int) (float64, error) {
	if i < 0 || i > f.NX || j < 0 || j > f.NY {
		return 0, ErrOutOfRange
	}

	return f.Values[j*(f.NX+1)+i], nil
}

// Row returns a copy of the values along i for fixed j. For a profile
// (NY = 0) Row(0) is the whole solution.
func (f *Field) Row(j int) ([]float64, error) {
	if j < 0 || j > f.NY {
		return nil, ErrOutOfRange
	}
	w := f.NX + 1

	return slices.Clone(f.Values[j*w : (j+1)*w]), nil
}
