// Package spatial provides the geometric half of the spanforest engine:
// 3-D integer points, the complete Euclidean edge set over them, and two
// ways of consuming that edge set in ascending weight order.
//
// What
//
//   - Point is an immutable (X, Y, Z) integer triple.
//   - CompleteEdges materializes one Edge per unordered pair of points,
//     n·(n−1)/2 in total, weighted by Euclidean distance in float64.
//   - SortEdges orders an edge slice ascending by weight with a stable sort.
//   - Stream is a lazy alternative backed by a min-heap: it yields the exact
//     same order as Sorted, but only pays O(log E) per consumed edge.
//
// Determinism
//
//	Edges are generated row-major over the input order: (0,1), (0,2), …,
//	(0,n−1), (1,2), …. Each Edge records that position in Seq. Equal
//	weights keep generation order under SortEdges (stable) and under Stream
//	(Seq is the heap's secondary key), so both strategies agree on ties.
//
// Complexity
//
//   - CompleteEdges: O(n²) time and memory.
//   - SortEdges:     O(E log E) time, E = n·(n−1)/2.
//   - NewStream:     O(n²) to generate and heapify; Next is O(log E).
//
// Memory is O(n²) in every strategy. The full edge set is always held in
// memory and is the scaling limit of this package.
package spatial
