// Package percolate estimates percolation thresholds on square lattices
// with a weighted, path-compressed union-find at its core.
//
// What is inside?
//
//	A small, dependency-light toolkit built around dynamic connectivity:
//		• Union-find: weighted + path halving, plus QuickUnion / QuickFind for comparison
//		• Percolation model: n×n grid, virtual top/bottom sites, backwash-free IsFull
//		• Monte Carlo driver: reproducible, optionally parallel threshold estimation
//		• Reservoir sampling: one uniform pick from a stream of unknown length
//
// Packages:
//
//	unionfind      UnionFind interface, Weighted, QuickUnion, QuickFind
//	percolation    Model: Open, IsOpen, IsFull, Percolates, NumberOfOpenSites
//	random         seeded Source (UniformInt, Bernoulli) and per-stream Derive
//	montecarlo     Run, Simulate, Result with mean / stddev / confidence interval
//	reservoir      Sampler and Pick
//	cmd/percolate  CLI: stats, simulate, uf, randomword
//
// Quick ASCII example (n=3, # closed, . open, o full):
//
//	o # #
//	o # #
//	o # .
//
// percolates through column 1, while the open corner (3,3) is not full.
//
//	go install github.com/katalvlaran/percolate/cmd/percolate@latest
package percolate
