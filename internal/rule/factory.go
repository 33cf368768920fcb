package rule

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// New builds a Rule from its configuration-facing name and raw parameter
// values. All parameter validation happens here, at load time; Evaluate
// never fails.
//
// Parameter strictness is two-way: a rule missing a required key is
// rejected, and so is a key the rule does not define (including any params
// at all on a parameterless rule).
func New(name string, params map[string]cty.Value) (Rule, error) {
	switch name {
	case "worst_status":
		if err := rejectParams(name, params); err != nil {
			return Rule{}, err
		}
		return Rule{Kind: WorstStatus}, nil

	case "majority_vote":
		if err := rejectParams(name, params); err != nil {
			return Rule{}, err
		}
		return Rule{Kind: MajorityVote}, nil

	case "threshold_rollup":
		tp, err := newThresholdParams(params)
		if err != nil {
			return Rule{}, err
		}
		return Rule{Kind: ThresholdRollup, Threshold: tp}, nil

	default:
		return Rule{}, fmt.Errorf("unknown rule %q", name)
	}
}

// rejectParams fails if a parameterless rule was given any parameters.
func rejectParams(name string, params map[string]cty.Value) error {
	if len(params) == 0 {
		return nil
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return fmt.Errorf("rule %q takes no parameters, got %v", name, keys)
}

func newThresholdParams(params map[string]cty.Value) (ThresholdParams, error) {
	var tp ThresholdParams
	required := map[string]*int{
		"red_threshold":    &tp.RedThreshold,
		"yellow_to_red":    &tp.YellowToRed,
		"yellow_to_yellow": &tp.YellowToYellow,
	}

	for key := range params {
		if _, ok := required[key]; !ok {
			return ThresholdParams{}, fmt.Errorf("rule %q: unknown parameter %q", "threshold_rollup", key)
		}
	}

	for key, dst := range required {
		val, ok := params[key]
		if !ok {
			return ThresholdParams{}, fmt.Errorf("rule %q: missing required parameter %q", "threshold_rollup", key)
		}
		n, err := countValue(val)
		if err != nil {
			return ThresholdParams{}, fmt.Errorf("rule %q: parameter %q: %w", "threshold_rollup", key, err)
		}
		*dst = n
	}
	return tp, nil
}

// countValue extracts a non-negative integer threshold from an untyped
// configuration value.
func countValue(val cty.Value) (int, error) {
	if !val.Type().Equals(cty.Number) {
		return 0, fmt.Errorf("must be a number, got %s", val.Type().FriendlyName())
	}

	var n int
	if err := gocty.FromCtyValue(val, &n); err != nil {
		return 0, fmt.Errorf("must be an integer: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("must be non-negative, got %d", n)
	}
	return n, nil
}
