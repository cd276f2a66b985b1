// Package forest maintains a partition of a fixed point set into disjoint
// clusters: a union-find (disjoint-set) arena with path compression and
// union by size.
//
// Each distinct point owns one slot, numbered in order of first occurrence.
// A slot is a root when it is its own parent; the root's index is the cluster
// id. A merge retires one root by pointing it at the survivor, so ids are
// opaque and only stable until the cluster takes part in another merge.
//
// Invariants
//
//   - Every point belongs to exactly one cluster; cluster sizes sum to Len().
//   - Count() starts at Len() and never increases. A merge of two different
//     clusters lowers it by exactly one; a merge inside one cluster is a no-op.
//   - Find is idempotent. Union(a, b) after a successful Union(a, b) returns
//     false and leaves the partition unchanged.
//
// Identity
//
//	Points are compared by value. Repeated coordinates in the input collapse
//	into one slot, so Len() counts distinct points and Union(p, p) is always
//	a no-op. The value methods (Find, Union, Connected) and the *Index
//	methods address the same slots.
//
// Complexity: New is O(n). Find and Union are O(α(n)) amortized. Sizes and
// Clusters are O(n log n).
//
// A Forest is not safe for concurrent use.
package forest
