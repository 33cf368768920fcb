// Package rule implements the closed set of rollup rules that derive a
// composite status from an ordered sequence of dependency statuses.
//
// Rules are modeled as a tagged variant (Kind plus a parameter bundle)
// rather than open dispatch: the set is small, configuration-driven, and
// this keeps parameter validation exhaustive at load time.
package rule

import (
	"github.com/vk/statusgridgo/internal/status"
)

// Kind identifies one of the supported rollup rules.
type Kind uint8

const (
	// WorstStatus returns the most severe dependency status under the
	// ordering Green < Yellow < Red. Unknown inputs are ignored.
	WorstStatus Kind = iota

	// ThresholdRollup counts red and yellow dependencies against
	// configured thresholds. Unknown inputs count toward neither.
	ThresholdRollup

	// MajorityVote returns the status held by the most dependencies,
	// ignoring Unknown inputs and breaking ties toward the least severe.
	MajorityVote
)

// Name returns the configuration-facing rule name.
func (k Kind) Name() string {
	switch k {
	case WorstStatus:
		return "worst_status"
	case ThresholdRollup:
		return "threshold_rollup"
	case MajorityVote:
		return "majority_vote"
	default:
		return "unknown"
	}
}

// ThresholdParams carries the three counters of a threshold_rollup rule.
// All values are non-negative; validation happens in New.
type ThresholdParams struct {
	// RedThreshold is the number of red dependencies at which the result
	// becomes red.
	RedThreshold int
	// YellowToRed is the number of yellow dependencies at which the result
	// escalates straight to red.
	YellowToRed int
	// YellowToYellow is the number of yellow dependencies at which the
	// result becomes yellow.
	YellowToYellow int
}

// Rule is one configured rollup rule. The Threshold field is meaningful
// only when Kind is ThresholdRollup.
type Rule struct {
	Kind      Kind
	Threshold ThresholdParams
}

// Evaluate applies the rule to the dependency statuses. It is a pure
// function: no rule mutates state or fails at evaluation time. An empty
// input sequence always yields Unknown.
func (r Rule) Evaluate(inputs []status.Status) status.Status {
	if len(inputs) == 0 {
		return status.Unknown
	}

	switch r.Kind {
	case ThresholdRollup:
		return r.evaluateThreshold(inputs)
	case MajorityVote:
		return evaluateMajority(inputs)
	default:
		return evaluateWorst(inputs)
	}
}

func evaluateWorst(inputs []status.Status) status.Status {
	worst := status.Green
	for _, in := range inputs {
		if in == status.Unknown {
			// An unknown child does not, by itself, degrade the parent.
			continue
		}
		if in.Worse(worst) {
			worst = in
		}
	}
	return worst
}

func (r Rule) evaluateThreshold(inputs []status.Status) status.Status {
	var redCount, yellowCount int
	for _, in := range inputs {
		switch in {
		case status.Red:
			redCount++
		case status.Yellow:
			yellowCount++
		}
	}

	// Strict cascade: the first matching condition wins.
	switch {
	case redCount >= r.Threshold.RedThreshold:
		return status.Red
	case yellowCount >= r.Threshold.YellowToRed:
		return status.Red
	case yellowCount >= r.Threshold.YellowToYellow:
		return status.Yellow
	default:
		return status.Green
	}
}

func evaluateMajority(inputs []status.Status) status.Status {
	counts := map[status.Status]int{}
	for _, in := range inputs {
		if in != status.Unknown {
			counts[in]++
		}
	}

	// Ties break toward the least severe value by visiting in severity order
	// and requiring a strictly greater count to take over.
	winner := status.Green
	max := 0
	for _, s := range []status.Status{status.Green, status.Yellow, status.Red} {
		if counts[s] > max {
			max = counts[s]
			winner = s
		}
	}
	return winner
}
