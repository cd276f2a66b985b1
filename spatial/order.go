package spatial

import (
	"cmp"
	"slices"
)

// SortEdges sorts edges in place, ascending by Weight.
//
// The sort is stable: edges of equal weight keep their relative order.
// Distances are finite and non-negative, so the float comparison is a strict
// weak ordering and never sees NaN.
//
// Complexity: O(E log E) time.
func SortEdges(edges []Edge) {
	slices.SortStableFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})
}

// Sorted generates the complete edge set over points and returns it in
// ascending weight order.
func Sorted(points []Point) []Edge {
	edges := CompleteEdges(points)
	SortEdges(edges)

	return edges
}

// IsSorted reports whether edges is in non-decreasing weight order.
func IsSorted(edges []Edge) bool {
	return slices.IsSortedFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})
}
