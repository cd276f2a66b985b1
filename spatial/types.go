// Package spatial defines the Point and Edge value types and sentinel errors.
package spatial

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow indicates that an integer computation on coordinates does not
// fit into the unsigned 64-bit result domain.
var ErrOverflow = errors.New("spatial: integer overflow")

// Point is a position in 3-D integer space. Two points are the same point
// when all three coordinates are equal.
type Point struct {
	X, Y, Z int
}

// String renders p as "x,y,z", the same layout pointio parses.
func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Dist returns the Euclidean distance between p and q.
// Differences are taken in float64 so large coordinates never wrap.
func (p Point) Dist(q Point) float64 {
	dx := float64(p.X) - float64(q.X)
	dy := float64(p.Y) - float64(q.Y)
	dz := float64(p.Z) - float64(q.Z)

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Edge is an undirected pair of points weighted by their Euclidean distance.
//
// I and J are the input indices of A and B (I < J). Seq is the position at
// which CompleteEdges produced the edge and breaks ties between equal weights.
type Edge struct {
	A, B   Point
	I, J   int
	Weight float64
	Seq    int
}

// Equal reports whether e and o join the same two points, in either order.
func (e Edge) Equal(o Edge) bool {
	return (e.A == o.A && e.B == o.B) || (e.A == o.B && e.B == o.A)
}

// String renders e as "(a)-(b) w".
func (e Edge) String() string {
	return fmt.Sprintf("(%v)-(%v) %.4f", e.A, e.B, e.Weight)
}

// less orders edges by Weight, then by Seq.
func less(a, b Edge) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	return a.Seq < b.Seq
}
