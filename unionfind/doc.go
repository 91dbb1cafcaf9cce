// Package unionfind maintains a partition of the integers 0..n-1 into
// disjoint components under incremental merging.
//
// What:
//
//   - Weighted: union-by-size with path halving. This is the production
//     structure; find/union cost is effectively constant for any practical n.
//   - QuickUnion: unweighted trees, no compression. Trees can degrade into
//     chains, so Find is O(n) in the worst case.
//   - QuickFind: flat id array. Find is O(1), Union rewrites the whole array.
//
// All three implement UnionFind and are interchangeable; New selects one by Kind.
//
// Why:
//
//   - Dynamic connectivity: "are p and q connected?" while edges arrive online.
//   - Percolation and other lattice models (see package percolation).
//   - Kruskal-style merging of clusters.
//
// Complexity (n elements, α = inverse Ackermann):
//
//   - Weighted:   construct O(n), Find/Union/Connected O(α(n)) amortized.
//   - QuickUnion: construct O(n), Find/Union/Connected O(n) worst case.
//   - QuickFind:  construct O(n), Find/Connected O(1), Union O(n).
//
// Errors:
//
//   - ErrInvalidArgument: n <= 0 at construction, or an element index outside [0, n).
//   - ErrUnknownKind: New was asked for a variant that does not exist.
//
// Validation happens before any mutation, so a rejected call never changes
// the partition or the component count.
//
// Instances are not safe for concurrent use.
package unionfind
