// Package benchmark grades channel conversion rates against industry
// reference rates and estimates the revenue left on the table.
package benchmark

import "math"

// Classification buckets a channel's gap to its benchmark.
type Classification string

const (
	Underperforming Classification = "underperforming"
	NearBenchmark   Classification = "near_benchmark"
	Outperforming   Classification = "outperforming"
)

const (
	// DefaultRate applies to channels missing from the table.
	DefaultRate = 3.0
	// DefaultAvgOrderValue is the assumed order value used to turn a
	// conversion shortfall into opportunity revenue.
	DefaultAvgOrderValue = 120.0
)

// DefaultTable returns the built-in benchmark conversion rates per channel,
// in percent.
func DefaultTable() map[string]float64 {
	return map[string]float64{
		"Google Ads":     3.75,
		"Facebook":       2.5,
		"Instagram":      1.8,
		"TikTok":         2.2,
		"Organic Search": 4.5,
		"Email":          5.0,
		"Direct":         4.0,
	}
}

// Evaluator holds the benchmark table and pricing assumptions. Evaluations
// are deterministic and perform no I/O.
type Evaluator struct {
	table         map[string]float64
	defaultRate   float64
	avgOrderValue float64
}

// New builds an Evaluator. A nil table, zero defaultRate or zero
// avgOrderValue fall back to the package defaults.
func New(table map[string]float64, defaultRate, avgOrderValue float64) *Evaluator {
	if table == nil {
		table = DefaultTable()
	}
	if defaultRate <= 0 {
		defaultRate = DefaultRate
	}
	if avgOrderValue <= 0 {
		avgOrderValue = DefaultAvgOrderValue
	}
	return &Evaluator{table: table, defaultRate: defaultRate, avgOrderValue: avgOrderValue}
}

// Result is the outcome of grading one channel.
type Result struct {
	Classification     Classification `json:"classification"`
	Benchmark          float64        `json:"benchmark"`
	Gap                float64        `json:"gap"`
	OpportunityRevenue float64        `json:"opportunityRevenue"`
}

// EvaluateChannel compares an observed conversion rate (percent) against the
// channel's benchmark. Gap is benchmark minus observed; a gap above 1 point
// is underperforming, a positive gap up to 1 point is near benchmark, and a
// zero or negative gap is outperforming. OpportunityRevenue is the rounded
// extra revenue expected if the channel converted at benchmark.
func (e *Evaluator) EvaluateChannel(channel string, observedRate float64, sessions, conversions int) Result {
	bench, ok := e.table[channel]
	if !ok {
		bench = e.defaultRate
	}
	gap := bench - observedRate

	var c Classification
	switch {
	case gap > 1.0:
		c = Underperforming
	case gap > 0:
		c = NearBenchmark
	default:
		c = Outperforming
	}

	opp := math.Round((float64(sessions)*bench/100 - float64(conversions)) * e.avgOrderValue)
	return Result{
		Classification:     c,
		Benchmark:          bench,
		Gap:                gap,
		OpportunityRevenue: opp,
	}
}

// AvgOrderValue exposes the configured order-value assumption.
func (e *Evaluator) AvgOrderValue() float64 { return e.avgOrderValue }
