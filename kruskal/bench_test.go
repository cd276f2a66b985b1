package kruskal_test

import (
	"testing"

	"github.com/katalvlaran/spanforest/kruskal"
)

// BenchmarkBounded_Sorted measures a 1000-edge cutoff over 500 points
// (124750 edges) with the full sort.
func BenchmarkBounded_Sorted(b *testing.B) {
	pts := randomPoints(500, 100000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kruskal.Bounded(pts)
	}
}

// BenchmarkBounded_Lazy is the same run with the heap-backed stream.
func BenchmarkBounded_Lazy(b *testing.B) {
	pts := randomPoints(500, 100000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kruskal.Bounded(pts, kruskal.WithStrategy(kruskal.StrategyLazy))
	}
}

// BenchmarkConnect measures full connectivity over 500 points.
func BenchmarkConnect(b *testing.B) {
	pts := randomPoints(500, 100000, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = kruskal.Connect(pts, kruskal.ProductX)
	}
}
