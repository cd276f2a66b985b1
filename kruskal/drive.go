package kruskal

import (
	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/spatial"
)

// edgeSource yields edges in ascending weight order.
type edgeSource interface {
	Next() (spatial.Edge, bool)
	Len() int
}

// sliceSource walks a pre-sorted edge slice.
type sliceSource struct {
	edges []spatial.Edge
	pos   int
}

func (s *sliceSource) Next() (spatial.Edge, bool) {
	if s.pos >= len(s.edges) {
		return spatial.Edge{}, false
	}
	e := s.edges[s.pos]
	s.pos++

	return e, true
}

func (s *sliceSource) Len() int { return len(s.edges) - s.pos }

// newSource returns the edge order for points under strategy s.
func newSource(points []spatial.Point, s Strategy) edgeSource {
	if s == StrategyLazy {
		return spatial.NewStream(points)
	}

	return &sliceSource{edges: spatial.Sorted(points)}
}

// drive consumes up to limit edges from src (all of them when limit < 0),
// calling Union on each edge's endpoints whether or not it merges. An edge
// between two equal points never merges.
// visit, if non-nil, sees every consumed edge and its merge outcome, and
// stops the scan early by returning false. drive returns the number of edges
// consumed.
func drive(src edgeSource, f *forest.Forest, limit int, visit func(e spatial.Edge, merged bool) bool) (int, error) {
	processed := 0
	for limit < 0 || processed < limit {
		e, ok := src.Next()
		if !ok {
			break
		}
		processed++

		merged, err := f.Union(e.A, e.B)
		if err != nil {
			return processed, err
		}
		if visit != nil && !visit(e, merged) {
			break
		}
	}

	return processed, nil
}
