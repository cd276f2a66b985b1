package forest_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spanforest/forest"
	"github.com/katalvlaran/spanforest/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tailscale.com/util/deephash"
)

var (
	p0 = spatial.Point{X: 0, Y: 0, Z: 0}
	p1 = spatial.Point{X: 0, Y: 0, Z: 1}
	p2 = spatial.Point{X: 0, Y: 0, Z: 10}
)

// fingerprint hashes the canonical partition of f.
func fingerprint(f *forest.Forest) deephash.Sum {
	snap := f.Clusters()
	return deephash.Hash(&snap)
}

// sumSizes adds up all cluster sizes.
func sumSizes(f *forest.Forest) int {
	total := 0
	for _, s := range f.Sizes() {
		total += s
	}

	return total
}

func TestNew_Singletons(t *testing.T) {
	f := forest.New([]spatial.Point{p0, p1, p2})
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, 3, f.Count())
	assert.Zero(t, f.Merges())
	assert.Equal(t, []int{1, 1, 1}, f.Sizes())
	assert.Equal(t, [][]spatial.Point{{p0}, {p1}, {p2}}, f.Clusters())

	ids := make(map[int]bool)
	for _, p := range []spatial.Point{p0, p1, p2} {
		id, err := f.Find(p)
		require.NoError(t, err)
		ids[id] = true
	}
	assert.Len(t, ids, 3, "singletons have distinct ids")
}

func TestNew_Empty(t *testing.T) {
	f := forest.New(nil)
	assert.Zero(t, f.Len())
	assert.Zero(t, f.Count())
	assert.Empty(t, f.Sizes())
	assert.Empty(t, f.Clusters())
}

func TestNew_CopiesInput(t *testing.T) {
	pts := []spatial.Point{p0, p1}
	f := forest.New(pts)
	pts[0] = p2
	got, err := f.Point(0)
	require.NoError(t, err)
	assert.Equal(t, p0, got)
}

func TestFind_NotFound(t *testing.T) {
	f := forest.New([]spatial.Point{p0, p1})

	_, err := f.Find(p2)
	assert.ErrorIs(t, err, forest.ErrNotFound)

	for _, i := range []int{-1, 2, 100} {
		_, err = f.FindIndex(i)
		assert.ErrorIs(t, err, forest.ErrNotFound, "index %d", i)
		_, err = f.Size(i)
		assert.ErrorIs(t, err, forest.ErrNotFound, "index %d", i)
		_, err = f.Point(i)
		assert.ErrorIs(t, err, forest.ErrNotFound, "index %d", i)
	}

	_, err = f.Union(p0, p2)
	assert.ErrorIs(t, err, forest.ErrNotFound)
	_, err = f.Union(p2, p0)
	assert.ErrorIs(t, err, forest.ErrNotFound)
	_, err = f.UnionIndex(0, 5)
	assert.ErrorIs(t, err, forest.ErrNotFound)
	_, err = f.Connected(p2, p0)
	assert.ErrorIs(t, err, forest.ErrNotFound)
	_, err = f.Connected(p0, p2)
	assert.ErrorIs(t, err, forest.ErrNotFound)

	// A failed lookup must not change the partition.
	assert.Equal(t, 2, f.Count())
}

func TestUnion_Basic(t *testing.T) {
	f := forest.New([]spatial.Point{p0, p1, p2})

	merged, err := f.Union(p0, p1)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, 2, f.Count())
	assert.Equal(t, []int{2, 1}, f.Sizes())
	assert.Equal(t, [][]spatial.Point{{p0, p1}, {p2}}, f.Clusters())

	ok, err := f.Connected(p0, p1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = f.Connected(p1, p2)
	require.NoError(t, err)
	assert.False(t, ok)

	size, err := f.Size(1)
	require.NoError(t, err)
	assert.Equal(t, 2, size)

	merged, err = f.Union(p2, p1)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, 1, f.Count())
	assert.Equal(t, 2, f.Merges())
	assert.Equal(t, [][]spatial.Point{{p0, p1, p2}}, f.Clusters())
}

func TestUnion_Idempotent(t *testing.T) {
	f := forest.New([]spatial.Point{p0, p1, p2})

	merged, err := f.Union(p0, p1)
	require.NoError(t, err)
	require.True(t, merged)
	once := fingerprint(f)
	count := f.Count()

	merged, err = f.Union(p0, p1)
	require.NoError(t, err)
	assert.False(t, merged, "second union is a no-op")
	merged, err = f.Union(p1, p0)
	require.NoError(t, err)
	assert.False(t, merged, "order does not matter")

	assert.Equal(t, once, fingerprint(f))
	assert.Equal(t, count, f.Count())
	assert.Equal(t, 1, f.Merges())
}

func TestFind_Idempotent(t *testing.T) {
	f := forest.New([]spatial.Point{p0, p1, p2})
	_, err := f.Union(p0, p1)
	require.NoError(t, err)

	first, err := f.Find(p1)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := f.Find(p1)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	root0, err := f.Find(p0)
	require.NoError(t, err)
	assert.Equal(t, first, root0)
}

func TestUnion_BySize(t *testing.T) {
	pts := []spatial.Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}}
	f := forest.New(pts)

	_, err := f.UnionIndex(1, 2) // {1,2}, root 1
	require.NoError(t, err)
	_, err = f.UnionIndex(3, 1) // singleton 3 joins larger {1,2}: root stays 1
	require.NoError(t, err)

	for _, i := range []int{1, 2, 3} {
		r, err := f.FindIndex(i)
		require.NoError(t, err)
		assert.Equal(t, 1, r, "slot %d", i)
	}
	r0, err := f.FindIndex(0)
	require.NoError(t, err)
	assert.Equal(t, 0, r0)
}

func TestDuplicatePoints(t *testing.T) {
	dup := spatial.Point{X: 5, Y: 5, Z: 5}
	f := forest.New([]spatial.Point{dup, p0, dup})
	assert.Equal(t, 2, f.Len(), "duplicates share one slot")
	assert.Equal(t, 2, f.Count())
	assert.Equal(t, []int{1, 1}, f.Sizes())

	id, err := f.Find(dup)
	require.NoError(t, err)
	assert.Equal(t, 0, id, "slot of the first occurrence")

	merged, err := f.Union(dup, dup)
	require.NoError(t, err)
	assert.False(t, merged, "union of a point with itself")
	assert.Zero(t, f.Merges())

	// Index 2 was the duplicate's input position; only two slots exist.
	_, err = f.UnionIndex(0, 2)
	assert.ErrorIs(t, err, forest.ErrNotFound)

	merged, err = f.UnionIndex(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, [][]spatial.Point{{dup, p0}}, f.Clusters())
	assert.Equal(t, f.Len(), f.Count()+f.Merges())
}

// TestRandomUnions_Invariants drives a forest with random unions and checks
// the partition, monotonicity and count bookkeeping after every step.
func TestRandomUnions_Invariants(t *testing.T) {
	const n = 200
	pts := make([]spatial.Point, n)
	for i := range pts {
		pts[i] = spatial.Point{X: i, Y: 2 * i, Z: 3 * i}
	}
	f := forest.New(pts)
	r := rand.New(rand.NewSource(42))

	prev := f.Count()
	for step := 0; step < 3*n; step++ {
		i, j := r.Intn(n), r.Intn(n)
		before := fingerprint(f)

		merged, err := f.UnionIndex(i, j)
		require.NoError(t, err)

		require.Equal(t, n, sumSizes(f), "sizes sum to n")
		require.LessOrEqual(t, f.Count(), prev, "count never increases")
		require.Equal(t, n, f.Count()+f.Merges())
		if merged {
			require.Equal(t, prev-1, f.Count())
		} else {
			require.Equal(t, prev, f.Count())
			require.Equal(t, before, fingerprint(f))
		}
		require.Len(t, f.Clusters(), f.Count())
		prev = f.Count()
	}
}

// TestClusters_HistoryIndependent checks that the snapshot depends only on
// the partition, not on the order of merges.
func TestClusters_HistoryIndependent(t *testing.T) {
	pts := []spatial.Point{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: 4}}

	a := forest.New(pts)
	for _, pair := range [][2]int{{0, 3}, {3, 4}, {1, 2}} {
		_, err := a.UnionIndex(pair[0], pair[1])
		require.NoError(t, err)
	}
	b := forest.New(pts)
	for _, pair := range [][2]int{{2, 1}, {4, 0}, {0, 3}} {
		_, err := b.UnionIndex(pair[0], pair[1])
		require.NoError(t, err)
	}

	assert.Equal(t, a.Clusters(), b.Clusters())
	assert.Equal(t, fingerprint(a), fingerprint(b))
	assert.Equal(t, [][]spatial.Point{{{X: 0}, {X: 3}, {X: 4}}, {{X: 1}, {X: 2}}}, a.Clusters())
}
