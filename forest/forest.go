package forest

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/spanforest/spatial"
)

// ErrNotFound indicates a point or slot index that was never part of the
// forest's initial point set.
var ErrNotFound = errors.New("forest: point not found")

// Forest is a union-find arena over a fixed point set.
type Forest struct {
	points []spatial.Point       // distinct values, first occurrence order
	index  map[spatial.Point]int // value -> slot

	parent []int
	size   []int // valid at roots only

	count  int
	merges int
}

// New returns a Forest with one singleton cluster per distinct point.
// Repeated coordinates collapse into the slot of their first occurrence.
// The points slice is not retained.
func New(points []spatial.Point) *Forest {
	f := &Forest{
		points: make([]spatial.Point, 0, len(points)),
		index:  make(map[spatial.Point]int, len(points)),
		parent: make([]int, 0, len(points)),
		size:   make([]int, 0, len(points)),
	}
	for _, p := range points {
		if _, dup := f.index[p]; dup {
			continue
		}
		i := len(f.points)
		f.index[p] = i
		f.points = append(f.points, p)
		f.parent = append(f.parent, i)
		f.size = append(f.size, 1)
	}
	f.count = len(f.points)

	return f
}

// Len returns the number of distinct points in the forest.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the current number of clusters.
func (f *Forest) Count() int { return f.count }

// Merges returns the number of successful merges applied so far.
// Len() == Count() + Merges() always holds.
func (f *Forest) Merges() int { return f.merges }

// Point returns the point stored in slot i.
func (f *Forest) Point(i int) (spatial.Point, error) {
	if i < 0 || i >= len(f.points) {
		return spatial.Point{}, fmt.Errorf("Point(%d): %w", i, ErrNotFound)
	}

	return f.points[i], nil
}

// Find returns the id of the cluster currently containing p.
func (f *Forest) Find(p spatial.Point) (int, error) {
	i, ok := f.index[p]
	if !ok {
		return 0, fmt.Errorf("Find(%v): %w", p, ErrNotFound)
	}

	return f.root(i), nil
}

// FindIndex returns the id of the cluster currently containing slot i.
func (f *Forest) FindIndex(i int) (int, error) {
	if i < 0 || i >= len(f.parent) {
		return 0, fmt.Errorf("FindIndex(%d): %w", i, ErrNotFound)
	}

	return f.root(i), nil
}

// Union merges the clusters containing a and b. It reports whether a merge
// happened; false means both already share a cluster.
func (f *Forest) Union(a, b spatial.Point) (bool, error) {
	i, ok := f.index[a]
	if !ok {
		return false, fmt.Errorf("Union(%v, %v): %w", a, b, ErrNotFound)
	}
	j, ok := f.index[b]
	if !ok {
		return false, fmt.Errorf("Union(%v, %v): %w", a, b, ErrNotFound)
	}

	return f.union(i, j), nil
}

// UnionIndex merges the clusters containing slots i and j. It reports
// whether a merge happened.
func (f *Forest) UnionIndex(i, j int) (bool, error) {
	n := len(f.parent)
	if i < 0 || i >= n || j < 0 || j >= n {
		return false, fmt.Errorf("UnionIndex(%d, %d): %w", i, j, ErrNotFound)
	}

	return f.union(i, j), nil
}

// Connected reports whether a and b are in the same cluster.
func (f *Forest) Connected(a, b spatial.Point) (bool, error) {
	ra, err := f.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := f.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// Size returns the size of the cluster containing slot i.
func (f *Forest) Size(i int) (int, error) {
	r, err := f.FindIndex(i)
	if err != nil {
		return 0, err
	}

	return f.size[r], nil
}

// Sizes returns the size of every cluster, largest first.
func (f *Forest) Sizes() []int {
	out := make([]int, 0, f.count)
	for i, p := range f.parent {
		if p == i {
			out = append(out, f.size[i])
		}
	}
	slices.SortFunc(out, func(a, b int) int { return b - a })

	return out
}

// Clusters returns a snapshot of the partition. Members appear in
// first-occurrence order and clusters are ordered by their first member, so two forests with
// the same partition produce equal snapshots regardless of merge history.
func (f *Forest) Clusters() [][]spatial.Point {
	slot := make(map[int]int, f.count) // root -> position in out
	out := make([][]spatial.Point, 0, f.count)
	for i := range f.parent {
		r := f.root(i)
		k, ok := slot[r]
		if !ok {
			k = len(out)
			slot[r] = k
			out = append(out, make([]spatial.Point, 0, f.size[r]))
		}
		out[k] = append(out[k], f.points[i])
	}

	return out
}

// root walks to the root of i, halving the path on the way.
func (f *Forest) root(i int) int {
	for f.parent[i] != i {
		// 1) Point i at its grandparent.
		f.parent[i] = f.parent[f.parent[i]]
		// 2) Continue from there; every other node on the path is skipped.
		i = f.parent[i]
	}

	return i
}

// union links the smaller tree under the larger. On equal sizes the root of
// i survives.
func (f *Forest) union(i, j int) bool {
	// 1) Resolve both roots; a shared root means nothing to merge.
	ri, rj := f.root(i), f.root(j)
	if ri == rj {
		return false
	}

	// 2) Keep ri as the larger tree. Ties keep i's root.
	if f.size[ri] < f.size[rj] {
		ri, rj = rj, ri
	}

	// 3) Hang rj under ri and move its size over.
	f.parent[rj] = ri
	f.size[ri] += f.size[rj]

	// 4) Book-keeping: one cluster fewer, one merge more.
	f.count--
	f.merges++

	return true
}
