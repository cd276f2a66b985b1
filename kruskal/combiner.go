package kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spanforest/spatial"
)

// Combiner folds the two endpoints of Connect's last merge edge into the
// run's result.
type Combiner func(a, b spatial.Point) (uint64, error)

// Axis names one coordinate of a Point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns "x", "y" or "z".
func (ax Axis) String() string {
	switch ax {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Of returns p's coordinate on ax.
func (ax Axis) Of(p spatial.Point) int {
	switch ax {
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	default:
		return p.X
	}
}

// ProductX multiplies the endpoints' X coordinates.
var ProductX = ProductOf(AxisX)

// ProductOf returns a Combiner multiplying the endpoints' coordinates on ax.
// A negative product is reported as ErrOverflow since the result is
// unsigned.
func ProductOf(ax Axis) Combiner {
	return func(a, b spatial.Point) (uint64, error) {
		u, v := ax.Of(a), ax.Of(b)
		m, err := MulChecked(abs(u), abs(v))
		if err != nil {
			return 0, fmt.Errorf("product of %s %d·%d: %w", ax, u, v, err)
		}
		if m != 0 && (u < 0) != (v < 0) {
			return 0, fmt.Errorf("product of %s %d·%d is negative: %w", ax, u, v, ErrOverflow)
		}

		return m, nil
	}
}

// SumOf returns a Combiner adding the endpoints' coordinates on ax.
// A negative or wrapping sum is reported as ErrOverflow.
func SumOf(ax Axis) Combiner {
	return func(a, b spatial.Point) (uint64, error) {
		u, v := ax.Of(a), ax.Of(b)
		if (v > 0 && u > math.MaxInt-v) || (v < 0 && u < math.MinInt-v) {
			return 0, fmt.Errorf("sum of %s %d+%d: %w", ax, u, v, ErrOverflow)
		}
		s := u + v
		if s < 0 {
			return 0, fmt.Errorf("sum of %s %d+%d is negative: %w", ax, u, v, ErrOverflow)
		}

		return uint64(s), nil
	}
}

// CombinerByName resolves "product-x", "product-y", "product-z", "sum-x",
// "sum-y" or "sum-z".
func CombinerByName(name string) (Combiner, error) {
	for _, ax := range []Axis{AxisX, AxisY, AxisZ} {
		switch name {
		case "product-" + ax.String():
			return ProductOf(ax), nil
		case "sum-" + ax.String():
			return SumOf(ax), nil
		}
	}

	return nil, fmt.Errorf("CombinerByName(%q): unknown combiner: %w", name, ErrInvalidInput)
}

// abs returns |v| as uint64, exact for math.MinInt.
func abs(v int) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}

	return uint64(v)
}
