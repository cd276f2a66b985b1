package spatial

import "container/heap"

// Stream yields the complete edge set over a point set in ascending weight
// order, the same order Sorted returns, without sorting it up front.
//
// The edges are heapified once and popped on demand, so a caller that stops
// after K edges pays O(E + K log E) instead of O(E log E). The edge set is
// still fully materialized: memory stays O(n²).
type Stream struct {
	pq edgePQ
}

// NewStream builds a Stream over points.
//
// Complexity: O(n²) time and memory.
func NewStream(points []Point) *Stream {
	s := &Stream{pq: edgePQ(CompleteEdges(points))}
	heap.Init(&s.pq)

	return s
}

// Next returns the lightest remaining edge. ok is false once the stream is
// exhausted.
func (s *Stream) Next() (e Edge, ok bool) {
	if s.pq.Len() == 0 {
		return Edge{}, false
	}

	return heap.Pop(&s.pq).(Edge), true
}

// Len returns the number of edges not yet consumed.
func (s *Stream) Len() int { return s.pq.Len() }

// edgePQ implements heap.Interface for a min-heap of Edge keyed by
// (Weight, Seq).
type edgePQ []Edge

func (pq edgePQ) Len() int           { return len(pq) }
func (pq edgePQ) Less(i, j int) bool { return less(pq[i], pq[j]) }
func (pq edgePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(Edge)) }

func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
