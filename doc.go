// Package spanforest clusters 3-D integer points along the complete
// Euclidean graph with Kruskal's algorithm.
//
// Subpackages:
//
//	spatial/ — Point, Edge, complete edge generation, stable ordering, lazy heap stream
//	forest/  — union-find partition of a point set (path compression, union by size)
//	kruskal/ — Bounded and Connect runs, Spanning tree, combiners, checked arithmetic
//	pointio/ — "x,y,z" line reader and writer
//
// The spanforest command in cmd/spanforest wraps these behind a cobra CLI
// with YAML configuration and slog logging.
//
// Quick example:
//
//	points := []spatial.Point{{X: 0}, {X: 1}, {X: 10}}
//	res, err := kruskal.Bounded(points, kruskal.WithCutoff(1))
//	// res.Sizes == [2 1], res.Product == 2
//
// Memory is O(n²) in the number of points: the full edge set is
// materialized.
package spanforest
