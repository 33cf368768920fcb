package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/statusgridgo/internal/status"
)

func thresholdParams(red, toRed, toYellow int) map[string]cty.Value {
	return map[string]cty.Value{
		"red_threshold":    cty.NumberIntVal(int64(red)),
		"yellow_to_red":    cty.NumberIntVal(int64(toRed)),
		"yellow_to_yellow": cty.NumberIntVal(int64(toYellow)),
	}
}

func TestWorstStatus(t *testing.T) {
	r, err := New("worst_status", nil)
	require.NoError(t, err)

	cases := []struct {
		name   string
		inputs []status.Status
		want   status.Status
	}{
		{"empty", nil, status.Unknown},
		{"all green", []status.Status{status.Green, status.Green}, status.Green},
		{"one yellow", []status.Status{status.Green, status.Yellow, status.Green}, status.Yellow},
		{"one red beats yellow", []status.Status{status.Yellow, status.Red, status.Green}, status.Red},
		{"unknown is ignored", []status.Status{status.Unknown, status.Green}, status.Green},
		{"unknown does not mask red", []status.Status{status.Unknown, status.Red}, status.Red},
		{"all unknown", []status.Status{status.Unknown, status.Unknown}, status.Green},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Evaluate(tc.inputs))
		})
	}
}

func TestThresholdRollup(t *testing.T) {
	r, err := New("threshold_rollup", thresholdParams(2, 3, 1))
	require.NoError(t, err)

	g, y, rd, u := status.Green, status.Yellow, status.Red, status.Unknown

	cases := []struct {
		name   string
		inputs []status.Status
		want   status.Status
	}{
		{"empty", nil, status.Unknown},
		{"one red below threshold", []status.Status{rd, g, g, g}, status.Green},
		{"two reds hit threshold", []status.Status{rd, rd, g, g}, status.Red},
		{"one yellow rolls to yellow", []status.Status{y, g, g, g}, status.Yellow},
		{"three yellows escalate to red", []status.Status{y, y, y, g}, status.Red},
		{"unknowns count toward neither", []status.Status{u, u, rd, g}, status.Green},
		{"all green", []status.Status{g, g, g, g}, status.Green},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Evaluate(tc.inputs))
		})
	}
}

func TestThresholdCascadeOrder(t *testing.T) {
	// red_threshold matches first even when the yellow escalation would too.
	r, err := New("threshold_rollup", thresholdParams(1, 1, 1))
	require.NoError(t, err)
	got := r.Evaluate([]status.Status{status.Red, status.Yellow})
	assert.Equal(t, status.Red, got)
}

func TestMajorityVote(t *testing.T) {
	r, err := New("majority_vote", nil)
	require.NoError(t, err)

	g, y, rd, u := status.Green, status.Yellow, status.Red, status.Unknown

	cases := []struct {
		name   string
		inputs []status.Status
		want   status.Status
	}{
		{"empty", nil, status.Unknown},
		{"green majority", []status.Status{g, g, rd}, status.Green},
		{"red majority", []status.Status{rd, rd, g}, status.Red},
		{"tie breaks least severe", []status.Status{rd, g}, status.Green},
		{"unknowns excluded", []status.Status{u, u, y}, status.Yellow},
		{"all unknown", []status.Status{u, u}, status.Green},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Evaluate(tc.inputs))
		})
	}
}

func TestNewValidation(t *testing.T) {
	t.Run("unknown rule name", func(t *testing.T) {
		_, err := New("median_status", nil)
		require.Error(t, err)
		assert.ErrorContains(t, err, "unknown rule")
	})

	t.Run("missing threshold parameter", func(t *testing.T) {
		params := thresholdParams(2, 3, 1)
		delete(params, "yellow_to_red")
		_, err := New("threshold_rollup", params)
		require.Error(t, err)
		assert.ErrorContains(t, err, "missing required parameter")
		assert.ErrorContains(t, err, "yellow_to_red")
	})

	t.Run("negative threshold", func(t *testing.T) {
		params := thresholdParams(2, 3, 1)
		params["red_threshold"] = cty.NumberIntVal(-1)
		_, err := New("threshold_rollup", params)
		require.Error(t, err)
		assert.ErrorContains(t, err, "non-negative")
	})

	t.Run("non-numeric threshold", func(t *testing.T) {
		params := thresholdParams(2, 3, 1)
		params["red_threshold"] = cty.StringVal("two")
		_, err := New("threshold_rollup", params)
		require.Error(t, err)
		assert.ErrorContains(t, err, "must be a number")
	})

	t.Run("unknown parameter key", func(t *testing.T) {
		params := thresholdParams(2, 3, 1)
		params["orange_threshold"] = cty.NumberIntVal(1)
		_, err := New("threshold_rollup", params)
		require.Error(t, err)
		assert.ErrorContains(t, err, "unknown parameter")
	})

	t.Run("params on parameterless rule", func(t *testing.T) {
		_, err := New("worst_status", map[string]cty.Value{"n": cty.NumberIntVal(1)})
		require.Error(t, err)
		assert.ErrorContains(t, err, "takes no parameters")
	})
}
