package kruskal

import (
	"fmt"

	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/spatial"
)

// Connect runs Kruskal's merge loop to completion and applies combine to the
// endpoints of the last edge that joined two different clusters.
//
// The last merge edge starts out as the first edge in order, so a run in
// which nothing merges (all points equal) still has a defined result. Equal
// points share a cluster from the start; with d distinct points the run
// performs exactly d−1 merges and ends with a single cluster. Once one
// cluster is left, the remaining edges can only be no-ops and are not
// consumed.
//
// Steps:
//  1. Validate points and combiner.
//  2. Start from one singleton cluster per distinct point.
//  3. Consume edges until one cluster is left, tracking the last merge edge.
//  4. Apply combine to that edge's endpoints.
//
// Error Conditions:
//   - ErrInvalidInput : fewer than two points, or combine == nil.
//   - ErrOverflow     : returned by the built-in combiners when the result
//     does not fit into uint64. Errors from custom combiners are wrapped.
//
// Complexity: O(E log E) with StrategySorted. Memory: O(E).
func Connect(points []spatial.Point, combine Combiner, opts ...Option) (ConnectResult, error) {
	o := resolve(opts)

	// 1. Validate.
	if len(points) < 2 {
		return ConnectResult{}, fmt.Errorf("%s: need at least 2 points, got %d: %w", MethodConnect, len(points), ErrInvalidInput)
	}
	if combine == nil {
		return ConnectResult{}, fmt.Errorf("%s: nil combiner: %w", MethodConnect, ErrInvalidInput)
	}

	// 2. Singletons.
	f := forest.New(points)

	// 3. Merge to one cluster. The first edge seeds last.
	var (
		last  spatial.Edge
		first = true
	)
	processed, err := drive(newSource(points, o.Strategy), f, -1, func(e spatial.Edge, merged bool) bool {
		if first || merged {
			last = e
			first = false
		}

		return f.Count() > 1
	})
	if err != nil {
		return ConnectResult{}, fmt.Errorf("%s: %w", MethodConnect, err)
	}

	// 4. Combine.
	value, err := combine(last.A, last.B)
	if err != nil {
		return ConnectResult{}, fmt.Errorf("%s: combine(%v, %v): %w", MethodConnect, last.A, last.B, err)
	}

	o.Logger.Debug("connect run finished",
		"points", len(points),
		"strategy", o.Strategy.String(),
		"processed", processed,
		"merges", f.Merges(),
		"clusters", f.Count(),
		"last", last.String(),
		"value", value,
	)

	return ConnectResult{
		Value:    value,
		Last:     last,
		Merges:   f.Merges(),
		Clusters: f.Count(),
	}, nil
}
