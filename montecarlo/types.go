// Package montecarlo defines options, results and sentinel errors for the
// threshold estimator.
package montecarlo

import (
	"fmt"

	"github.com/katalvlaran/percolate/unionfind"
)

// ErrInvalidArgument is returned for n <= 0 or trials <= 0.
// It is the same value as unionfind.ErrInvalidArgument.
var ErrInvalidArgument = unionfind.ErrInvalidArgument

// DefaultConfidence is the confidence level used unless WithConfidence is given.
const DefaultConfidence = 0.95

// Result summarizes T trials on an n-by-n grid.
type Result struct {
	N          int       // grid side length
	Trials     int       // number of trials T
	Thresholds []float64 // per-trial open-site fraction, in trial order
	Mean       float64   // sample mean of Thresholds
	StdDev     float64   // sample standard deviation (NaN when Trials == 1)
	Confidence float64   // confidence level of the interval, e.g. 0.95
	// ConfidenceLo and ConfidenceHi bound the interval Mean ± z·StdDev/√Trials.
	ConfidenceLo float64
	ConfidenceHi float64
}

// Observer is notified once per finished trial. Calls are serialized but,
// with more than one worker, may arrive out of trial order.
type Observer func(trial int, threshold float64)

// config is the resolved option set for Run.
type config struct {
	seed       int64
	workers    int
	confidence float64
	observer   Observer
}

func defaultConfig() config {
	return config{seed: 0, workers: 1, confidence: DefaultConfidence}
}

// Option customizes Run.
type Option func(*config)

// WithSeed fixes the base seed; seed 0 selects random.DefaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithWorkers runs up to k trials concurrently. Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic(fmt.Sprintf("montecarlo: WithWorkers(%d)", k))
	}
	return func(c *config) { c.workers = k }
}

// WithConfidence sets the two-sided confidence level. Panics unless 0 < level < 1.
func WithConfidence(level float64) Option {
	if !(level > 0 && level < 1) {
		panic(fmt.Sprintf("montecarlo: WithConfidence(%v)", level))
	}
	return func(c *config) { c.confidence = level }
}

// WithObserver registers fn to be called after every trial. Panics on nil.
func WithObserver(fn Observer) Option {
	if fn == nil {
		panic("montecarlo: WithObserver(nil)")
	}
	return func(c *config) { c.observer = fn }
}
