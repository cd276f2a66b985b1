package pointio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spanforest/spatial"
)

// ErrMalformed indicates a line that is not three comma-separated integers.
var ErrMalformed = errors.New("pointio: malformed point")

// Parse reads points from r.
func Parse(r io.Reader) ([]spatial.Point, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var points []spatial.Point
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("line %d: %v: %w", pe.Line, pe.Err, ErrMalformed)
			}
			return nil, err
		}

		var xyz [3]int
		for k, field := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				line, _ := cr.FieldPos(k)
				return nil, fmt.Errorf("line %d: coordinate %q: %w", line, field, ErrMalformed)
			}
			xyz[k] = v
		}
		points = append(points, spatial.Point{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}

	return points, nil
}

// ParseString is Parse over a string.
func ParseString(s string) ([]spatial.Point, error) {
	return Parse(strings.NewReader(s))
}

// Write emits points to w, one "x,y,z" line each.
func Write(w io.Writer, points []spatial.Point) error {
	for _, p := range points {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return err
		}
	}

	return nil
}
