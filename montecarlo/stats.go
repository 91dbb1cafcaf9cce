package montecarlo

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// summarize computes the sample statistics over thresholds.
//
// Complexity: O(T).
func summarize(n int, thresholds []float64, confidence float64) *Result {
	mean, std := stat.MeanStdDev(thresholds, nil)
	half := zScore(confidence) * std / math.Sqrt(float64(len(thresholds)))

	return &Result{
		N:            n,
		Trials:       len(thresholds),
		Thresholds:   thresholds,
		Mean:         mean,
		StdDev:       std,
		Confidence:   confidence,
		ConfidenceLo: mean - half,
		ConfidenceHi: mean + half,
	}
}

// zScore returns the standard normal quantile bounding a two-sided interval
// at the given level, e.g. 0.95 → 1.95996.
func zScore(level float64) float64 {
	return distuv.UnitNormal.Quantile(1 - (1-level)/2)
}
