// Package percolation models an n-by-n grid of sites, each open or closed,
// and answers whether open sites connect the top row to the bottom row.
//
// What:
//
//   - Sites are addressed by 1-indexed (row, col) in [1, n]×[1, n].
//   - Open(row, col) opens a site and joins it with its open N/E/S/W neighbours.
//   - IsFull reports whether an open site is reachable from the top row.
//   - Percolates reports whether the bottom row is reachable from the top row.
//
// How:
//
//	Two unionfind.Weighted structures share the mapping site(row,col) ↦ (row-1)·n + col.
//	Element 0 is a virtual top joined to every open row-1 site.
//	Element n·n+1 is a virtual bottom joined to every open row-n site,
//	and it exists only in the first structure.
//
//	  full     (n·n+2 elements): answers Percolates.
//	  topOnly  (n·n+1 elements): answers IsFull.
//
// Backwash:
//
//	With a single structure, once any column percolates every open bottom-row
//	site shares the virtual bottom's root and therefore looks full even when
//	no open path leads up to it. topOnly has no virtual bottom, so IsFull
//	cannot be reached through it.
//
//	  n=3, open (1,1) (2,1) (3,1) (3,3):
//	    o # #
//	    o # #
//	    o # .      (3,3) is open but not full
//
// Complexity:
//
//   - New: O(n²) time and memory.
//   - Open, IsFull, Percolates: O(α(n²)) amortized.
//   - IsOpen, NumberOfOpenSites: O(1).
//
// Errors:
//
//   - ErrInvalidArgument: n <= 0, or row/col outside [1, n]. Rejected calls
//     change nothing.
//
// A Model is owned by one trial and is not safe for concurrent use.
package percolation
