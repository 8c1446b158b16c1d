package fieldio

import "errors"

var (
	// ErrHeader indicates a missing or malformed "nx ny re" header.
	ErrHeader = errors.New("fieldio: malformed header")
	// ErrRow indicates a data row that is not three floats.
	ErrRow = errors.New("fieldio: malformed row")
	// ErrPointCount indicates the number of points disagrees with nx, ny.
	ErrPointCount = errors.New("fieldio: point count mismatch")
	// ErrOutOfRange indicates an (i, j) outside the grid.
	ErrOutOfRange = errors.New("fieldio: index out of range")
)
