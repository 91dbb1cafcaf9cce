// Package montecarlo estimates the percolation threshold of an n-by-n grid
// by repeated independent trials.
//
// What:
//
//	Each trial builds a fresh percolation.Model and opens uniformly random
//	sites until the model percolates. The fraction of open sites at that
//	moment is one sample of the threshold p*. Run collects T samples and
//	reports the sample mean, the sample standard deviation and a confidence
//	interval mean ± z·s/√T (z ≈ 1.96 for the default 95% level).
//
// Determinism:
//
//	Trial i draws from random.Derive(seed, i). Results are therefore
//	identical for the same seed no matter how many workers run the trials.
//
// Concurrency:
//
//	Trials share nothing, so WithWorkers(k) runs up to k of them at once on an
//	errgroup. Each goroutine owns its Model and its random stream.
//
// Complexity: O(T·n²·α(n²)) time, O(k·n²) memory for k workers.
//
// Errors:
//
//   - ErrInvalidArgument: n <= 0 or trials <= 0.
//   - ctx.Err() when the context is cancelled before all trials finish.
package montecarlo
