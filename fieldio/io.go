package fieldio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// maxPrealloc bounds the capacity reserved from an untrusted header.
const maxPrealloc = 1 << 16

// Read parses a field from r. Blank lines are ignored.
//
// Errors: ErrHeader (also when (nx+1)·(ny+1) overflows int), ErrRow (wrapped
// with the line number), ErrPointCount.
// Complexity: O(points) time and memory.
func Read(r io.Reader) (*Field, error) {
	sc := bufio.NewScanner(r)

	var (
		f      *Field
		line   int
		header bool
	)
	for sc.Scan() {
		line++
		words := strings.Fields(sc.Text())
		if len(words) == 0 {
			continue
		}

		if !header {
			h, err := parseHeader(words)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			f = h
			header = true
			continue
		}

		x, y, v, err := parseRow(words)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(f.Values) == f.Points() {
			return nil, fmt.Errorf("line %d: %w", line, ErrPointCount)
		}
		f.X = append(f.X, x)
		f.Y = append(f.Y, y)
		f.Values = append(f.Values, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fieldio: read: %w", err)
	}
	if !header {
		return nil, ErrHeader
	}
	if len(f.Values) != f.Points() {
		return nil, fmt.Errorf("got %d of %d points: %w", len(f.Values), f.Points(), ErrPointCount)
	}

	return f, nil
}

func parseHeader(words []string) (*Field, error) {
	if len(words) != 3 {
		return nil, ErrHeader
	}
	nx, err := strconv.Atoi(words[0])
	if err != nil || nx < 0 {
		return nil, ErrHeader
	}
	ny, err := strconv.Atoi(words[1])
	if err != nil || ny < 0 {
		return nil, ErrHeader
	}
	re, err := strconv.ParseFloat(words[2], 64)
	if err != nil {
		return nil, ErrHeader
	}

	if overflows(nx, ny) {
		return nil, ErrHeader
	}

	// Rows beyond the first maxPrealloc grow by append.
	p := min((nx+1)*(ny+1), maxPrealloc)
	return &Field{
		NX:     nx,
		NY:     ny,
		Re:     re,
		X:      make([]float64, 0, p),
		Y:      make([]float64, 0, p),
		Values: make([]float64, 0, p),
	}, nil
}

// overflows reports whether (nx+1)·(ny+1) does not fit in an int.
func overflows(nx, ny int) bool { return nx > math.MaxInt/(ny+1)-1 }

func parseRow(words []string) (x, y, v float64, err error) {
	if len(words) != 3 {
		return 0, 0, 0, ErrRow
	}
	var vals [3]float64
	for k, w := range words {
		vals[k], err = strconv.ParseFloat(w, 64)
		if err != nil {
			return 0, 0, 0, ErrRow
		}
	}

	return vals[0], vals[1], vals[2], nil
}

// Write serializes f to w. Floats use the shortest representation that
// round-trips exactly.
func Write(w io.Writer, f *Field) error {
	if err := f.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %s\n", f.NX, f.NY, formatFloat(f.Re))
	for k := range f.Values {
		fmt.Fprintf(bw, "%s %s %s\n", formatFloat(f.X[k]), formatFloat(f.Y[k]), formatFloat(f.Values[k]))
	}

	return bw.Flush()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// ReadFile opens path and calls Read.
func ReadFile(path string) (*Field, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fieldio: open: %w", err)
	}
	defer fh.Close()

	f, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// WriteFile creates (or truncates) path and calls Write.
func WriteFile(path string, f *Field) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fieldio: create: %w", err)
	}
	if err := Write(fh, f); err != nil {
		_ = fh.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return fh.Close()
}
