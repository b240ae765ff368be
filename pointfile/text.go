package pointfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/tourlen/geom"
)

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...Option) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, opts...)
}

// Read parses the text point format from r.
//
// Errors: ErrMalformedInput (wrapped, with the line number) for a missing or
// non-integer count line, a line with other than 2 or 3 fields, or a
// coordinate that is not a finite number. I/O errors are returned as-is.
func Read(r io.Reader, opts ...Option) (*Instance, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	sc := bufio.NewScanner(r)
	var (
		line     int
		declared = -1
		pts      []geom.Point
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		if declared < 0 {
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 || len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: want a point count, got %q", ErrMalformedInput, line, sc.Text())
			}
			declared = n
			if n > 0 {
				pts = make([]geom.Point, 0, n)
			}
			continue
		}

		p, err := parsePoint(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedInput, line, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if declared < 0 {
		return nil, fmt.Errorf("%w: missing point count", ErrMalformedInput)
	}

	return newInstance(declared, pts, o)
}

// parsePoint reads "x y" or "id x y".
func parsePoint(fields []string) (geom.Point, error) {
	switch len(fields) {
	case 2:
	case 3:
		fields = fields[1:]
	default:
		return geom.Point{}, fmt.Errorf("want 2 or 3 fields, got %d", len(fields))
	}

	var xy [2]float64
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return geom.Point{}, fmt.Errorf("coordinate %q is not a number", s)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return geom.Point{}, fmt.Errorf("coordinate %q is not finite", s)
		}
		xy[i] = v
	}

	return geom.Pt(xy[0], xy[1]), nil
}
