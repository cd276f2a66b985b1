package kruskal

import (
	"fmt"

	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/spatial"
)

// Spanning returns the minimum spanning tree of the complete Euclidean graph
// over the distinct points: the d−1 edges that merged clusters, in the order they merged,
// and their total weight.
//
// A single point yields an empty tree with weight 0.
//
// Error Conditions:
//   - ErrInvalidInput : no points.
//
// Complexity: O(E log E). Memory: O(E).
func Spanning(points []spatial.Point, opts ...Option) ([]spatial.Edge, float64, error) {
	o := resolve(opts)

	if len(points) == 0 {
		return nil, 0, fmt.Errorf("%s: no points: %w", MethodSpanning, ErrInvalidInput)
	}
	if len(points) == 1 {
		return []spatial.Edge{}, 0, nil
	}

	f := forest.New(points)
	var (
		mst   = make([]spatial.Edge, 0, len(points)-1)
		total float64
	)
	if _, err := drive(newSource(points, o.Strategy), f, -1, func(e spatial.Edge, merged bool) bool {
		if merged {
			mst = append(mst, e)
			total += e.Weight
		}

		return f.Count() > 1
	}); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", MethodSpanning, err)
	}

	o.Logger.Debug("spanning tree built", "points", len(points), "edges", len(mst), "weight", total)

	return mst, total, nil
}
