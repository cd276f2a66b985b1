package spatial

// EdgeCount returns the number of unordered pairs over n points, n·(n−1)/2.
// It returns 0 for n < 2.
func EdgeCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// CompleteEdges builds the complete undirected graph over points.
//
// One Edge is produced for every pair (i, j) with i < j, in row-major order:
// i ascending, then j ascending. Edge.Seq records that position. Fewer than
// two points yield an empty, non-nil slice; that is a degenerate input, not
// an error.
//
// Complexity: O(n²) time and memory.
func CompleteEdges(points []Point) []Edge {
	n := len(points)
	edges := make([]Edge, 0, EdgeCount(n))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, Edge{
				A:      points[i],
				B:      points[j],
				I:      i,
				J:      j,
				Weight: points[i].Dist(points[j]),
				Seq:    len(edges),
			})
		}
	}

	return edges
}
