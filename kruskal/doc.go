// Package kruskal drives Kruskal's algorithm over the complete Euclidean
// graph of a 3-D point set and reduces the resulting partition to a single
// unsigned number.
//
// Modes
//
//	Bounded(points, opts...) (BoundedResult, error)
//	    Consume only the first min(K, |E|) edges in ascending weight order
//	    (K = WithCutoff, default 1000), calling union on every one of them.
//	    Multiply the sizes of the Top largest clusters (WithTop, default 3).
//	    Fewer clusters than Top simply contribute fewer factors.
//
//	Connect(points, combine, opts...) (ConnectResult, error)
//	    Consume edges until every point is in one cluster, remembering the
//	    last edge whose union merged two clusters. Apply combine to that
//	    edge's endpoints. ProductX (a.X·b.X) is the classic instantiation;
//	    ProductOf and SumOf cover the other axes.
//
//	Spanning(points, opts...) ([]spatial.Edge, float64, error)
//	    The d−1 merge edges over d distinct points and their total weight:
//	    the minimum spanning tree.
//
// Strategies
//
//	StrategySorted stable-sorts the full edge list once. StrategyLazy keeps
//	it in a min-heap and pops edges on demand, which is cheaper when Bounded
//	stops after few edges. Both break weight ties by generation order, so
//	they always agree.
//
// Errors
//
//   - ErrInvalidInput: empty point set (Bounded, Spanning), fewer than two
//     points or a nil combiner (Connect), negative cutoff, Top < 1.
//   - ErrOverflow: size product or combiner result outside uint64.
//
// Every error carries the method name as context; branch with errors.Is.
//
// Runs are synchronous, single-threaded and pure: the same input always
// yields the same result. Memory is O(n²) because the edge set is
// materialized.
package kruskal
