// Package random supplies the two random services consumed by the
// percolation driver and the reservoir sampler: a uniform integer in a
// half-open range and a Bernoulli trial.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across runs and platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independent streams: Derive gives each trial or worker its own generator.
//
// Concurrency:
//   - *Rand wraps math/rand.Rand and is NOT goroutine-safe.
//     Give every goroutine its own stream via Derive.
package random

import (
	"fmt"
	"math/rand"
)

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// Source is the abstract randomness consumed by this module.
type Source interface {
	// UniformInt returns an integer uniformly drawn from [low, high).
	UniformInt(low, high int) int
	// Bernoulli returns true with probability p.
	Bernoulli(p float64) bool
}

// Rand is a deterministic Source backed by math/rand.
type Rand struct {
	r *rand.Rand
}

var _ Source = (*Rand)(nil)

// New returns a deterministic Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func New(seed int64) *Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Derive returns the stream-th independent generator for a base seed.
// The same (seed, stream) pair always yields the same sequence, so work
// split across any number of goroutines stays reproducible.
//
// Complexity: O(1).
func Derive(seed int64, stream uint64) *Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Rand{r: rand.New(rand.NewSource(mixSeed(seed, stream)))}
}

// mixSeed combines a parent seed and a stream id with a SplitMix64 finalizer
// so that neighbouring stream ids produce unrelated seeds.
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// UniformInt returns an integer in [low, high).
// Like rand.Intn it panics when the range is empty (high <= low).
func (s *Rand) UniformInt(low, high int) int {
	if high <= low {
		panic(fmt.Sprintf("random: UniformInt empty range [%d, %d)", low, high))
	}
	return low + s.r.Intn(high-low)
}

// Bernoulli returns true with probability p.
// It panics when p lies outside [0, 1].
func (s *Rand) Bernoulli(p float64) bool {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("random: Bernoulli probability %v not in [0, 1]", p))
	}
	return s.r.Float64() < p
}

// Shuffle permutes a in place (Fisher–Yates).
//
// Complexity: O(n) time, O(1) extra space.
func (s *Rand) Shuffle(a []int) {
	for i := len(a) - 1; i > 0; i-- {
		j := s.r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
