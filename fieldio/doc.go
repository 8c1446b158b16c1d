// Package fieldio reads and writes scalar fields sampled on structured
// grids in the plain-text layout used by the solver's companion tools:
//
//	nx ny re
//	x y value      ← (nx+1)·(ny+1) rows, i fastest, then j
//
// A 1-D multigrid solution is stored with ny = 0 (see FromProfile), so the
// same files feed both 1-D profiles and 2-D contour plots.
//
// Errors:
//
//   - ErrHeader:     first line is not "int int float".
//   - ErrRow:        a data row is not three floats.
//   - ErrPointCount: row count or slice lengths disagree with nx, ny.
//   - ErrOutOfRange: At called with indices outside the grid.
//
// Parse errors are wrapped with the 1-based line number; match with errors.Is.
package fieldio
