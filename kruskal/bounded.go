package kruskal

import (
	"fmt"

	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/spatial"
)

// Bounded runs Kruskal's merge loop over the first min(Cutoff, |E|) edges in
// ascending order and multiplies the sizes of the Top largest clusters left.
//
// Every consumed edge counts toward the cutoff, whether or not its union
// merged anything; an edge between two equal points never does. When fewer
// than Top clusters remain, the product covers
// only the clusters present.
//
// Error Conditions:
//   - ErrInvalidInput : no points, Cutoff < 0, or Top < 1.
//   - ErrOverflow     : the size product does not fit into uint64.
//
// Steps:
//  1. Validate points and options.
//  2. Start from one singleton cluster per distinct point.
//  3. Consume edges in order until Cutoff edges are seen or none remain.
//  4. Sort cluster sizes descending and multiply the first Top.
//
// Complexity: O(E log E) with StrategySorted, O(E + K log E) with
// StrategyLazy. Memory: O(E), E = n·(n−1)/2.
func Bounded(points []spatial.Point, opts ...Option) (BoundedResult, error) {
	o := resolve(opts)

	// 1. Validate.
	if len(points) == 0 {
		return BoundedResult{}, fmt.Errorf("%s: no points: %w", MethodBounded, ErrInvalidInput)
	}
	if o.Cutoff < 0 {
		return BoundedResult{}, fmt.Errorf("%s: cutoff %d < 0: %w", MethodBounded, o.Cutoff, ErrInvalidInput)
	}
	if o.Top < 1 {
		return BoundedResult{}, fmt.Errorf("%s: top %d < 1: %w", MethodBounded, o.Top, ErrInvalidInput)
	}

	// 2-3. Merge along the cheapest Cutoff edges.
	f := forest.New(points)
	processed, err := drive(newSource(points, o.Strategy), f, o.Cutoff, nil)
	if err != nil {
		return BoundedResult{}, fmt.Errorf("%s: %w", MethodBounded, err)
	}

	// 4. Multiply the largest Top sizes.
	sizes := f.Sizes()
	product, err := Product(sizes[:min(o.Top, len(sizes))])
	if err != nil {
		return BoundedResult{}, fmt.Errorf("%s: %w", MethodBounded, err)
	}

	o.Logger.Debug("bounded run finished",
		"points", len(points),
		"cutoff", o.Cutoff,
		"strategy", o.Strategy.String(),
		"processed", processed,
		"merges", f.Merges(),
		"clusters", f.Count(),
		"product", product,
	)

	return BoundedResult{
		Product:   product,
		Sizes:     sizes,
		Processed: processed,
		Merges:    f.Merges(),
		Clusters:  f.Count(),
	}, nil
}
