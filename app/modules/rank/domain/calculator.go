// Package rankdomain holds the pure scoring and role-ladder logic. Nothing in
// this package touches storage, caches, or the network.
package rankdomain

import (
	"fmt"
	"slices"
)

// Regime selects which leaderboard source a guild scores from. The standard
// regime reads osu! country-leaderboard top-rank counts at five thresholds;
// the delta regime reads the alternative tracker, which only exposes four.
type Regime string

const (
	RegimeStandard Regime = "standard"
	RegimeDelta    Regime = "delta"
)

// Per-threshold weights. A single weight table covers both regimes so the
// same threshold is always worth the same, whichever source produced it.
var thresholdWeights = map[int]int{
	1:  5,
	8:  4,
	15: 3,
	25: 2,
	50: 1,
}

var (
	standardThresholds = []int{1, 8, 15, 25, 50}
	deltaThresholds    = []int{1, 8, 25, 50}
)

// Thresholds returns the regime's rank thresholds in the fixed order count
// vectors must be aligned to.
func (r Regime) Thresholds() []int {
	switch r {
	case RegimeDelta:
		return slices.Clone(deltaThresholds)
	default:
		return slices.Clone(standardThresholds)
	}
}

// Valid reports whether r names a known regime.
func (r Regime) Valid() bool {
	return r == RegimeStandard || r == RegimeDelta
}

// Score computes the weighted point total for a count vector aligned to the
// regime's threshold order. It is deterministic and monotonic in every count.
func (r Regime) Score(counts []int) (int, error) {
	thresholds := r.Thresholds()
	if len(counts) != len(thresholds) {
		return 0, fmt.Errorf("regime %s expects %d counts, got %d", r, len(thresholds), len(counts))
	}
	total := 0
	for i, count := range counts {
		if count < 0 {
			return 0, fmt.Errorf("negative count %d for rank threshold %d", count, thresholds[i])
		}
		total += thresholdWeights[thresholds[i]] * count
	}
	return total, nil
}

// ScoreWithOverrides recomputes the score with one or more thresholds
// substituted by caller-supplied counts; thresholds absent from overrides
// keep their observed counts. Used by the what-if command.
func (r Regime) ScoreWithOverrides(counts []int, overrides map[int]int) (int, error) {
	thresholds := r.Thresholds()
	if len(counts) != len(thresholds) {
		return 0, fmt.Errorf("regime %s expects %d counts, got %d", r, len(thresholds), len(counts))
	}

	substituted := slices.Clone(counts)
	for threshold, count := range overrides {
		i := slices.Index(thresholds, threshold)
		if i < 0 {
			return 0, fmt.Errorf("rank threshold %d not part of regime %s", threshold, r)
		}
		substituted[i] = count
	}
	return r.Score(substituted)
}
