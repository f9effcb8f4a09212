package stability

import "time"

// MaxStability is the starting and upper bound of the stability meter.
const MaxStability = 100.0

// Milestones is an ascending list of click totals. Each one reached grants a
// single drop trial.
type Milestones []int64

// Index returns how many milestones clicks has reached.
func (ms Milestones) Index(clicks int64) int {
	n := 0
	for _, m := range ms {
		if clicks >= m {
			n++
		}
	}
	return n
}

// Thresholds is a descending list of stability values. Falling strictly below
// each one advances the growth ordinal by one.
type Thresholds []float64

// Ordinal returns the growth ordinal for a stability value.
func (ts Thresholds) Ordinal(stability float64) int {
	n := 0
	for _, t := range ts {
		if stability < t {
			n++
		}
	}
	return n
}

// Rules are the tunable numbers of the stability meter.
type Rules struct {
	DropProbability   float64
	MinDrop           float64
	MaxDrop           float64
	BranchProbability float64
	// Growth ordinals at which each alternate ending may be entered.
	BranchAOrdinal int
	BranchBOrdinal int
	Thresholds     Thresholds
	Milestones     Milestones
	FrameDuration  time.Duration
}

// DefaultRules returns the standard game tuning.
func DefaultRules() Rules {
	return Rules{
		DropProbability:   0.8,
		MinDrop:           10,
		MaxDrop:           30,
		BranchProbability: 0.5,
		BranchAOrdinal:    3,
		BranchBOrdinal:    2,
		Thresholds:        Thresholds{80, 60, 40, 20, 10},
		Milestones:        Milestones{100, 1_000, 10_000, 100_000, 1_000_000},
		FrameDuration:     500 * time.Millisecond,
	}
}

func clamp(v float64) float64 {
	return min(max(v, 0), MaxStability)
}
