package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownChannelUsesDefaultRate(t *testing.T) {
	e := New(nil, 0, 0)
	res := e.EvaluateChannel("UnknownChannel", 2.5, 1000, 25)

	assert.Equal(t, NearBenchmark, res.Classification)
	assert.Equal(t, 3.0, res.Benchmark)
	assert.InDelta(t, 0.5, res.Gap, 1e-9)
	assert.Equal(t, 600.0, res.OpportunityRevenue)
}

func TestClassificationThresholds(t *testing.T) {
	e := New(nil, 0, 0)

	cases := []struct {
		name     string
		channel  string
		observed float64
		want     Classification
	}{
		{"well below benchmark", "Google Ads", 1.0, Underperforming},
		{"just over one point below", "Google Ads", 2.7, Underperforming},
		{"within one point", "Google Ads", 3.0, NearBenchmark},
		{"exactly at benchmark", "Google Ads", 3.75, Outperforming},
		{"above benchmark", "Email", 6.2, Outperforming},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := e.EvaluateChannel(tc.channel, tc.observed, 1000, 30)
			assert.Equal(t, tc.want, res.Classification)
		})
	}
}

func TestOpportunityRevenueUsesConfiguredAOV(t *testing.T) {
	e := New(map[string]float64{"Shop": 4.0}, 0, 50)
	res := e.EvaluateChannel("Shop", 2.0, 1000, 20)

	// 1000 * 4% = 40 expected conversions, 20 short, at $50 each.
	assert.Equal(t, 1000.0, res.OpportunityRevenue)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	e := New(nil, 0, 0)
	first := e.EvaluateChannel("Facebook", 1.9, 1800, 34)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, e.EvaluateChannel("Facebook", 1.9, 1800, 34))
	}
}

func TestOutperformingGapIsNegative(t *testing.T) {
	e := New(nil, 0, 0)
	res := e.EvaluateChannel("Direct", 5.0, 1600, 80)

	assert.Equal(t, Outperforming, res.Classification)
	assert.InDelta(t, -1.0, res.Gap, 1e-9)
}
