// Package aggregate turns raw backend rows into chart-ready series. All
// functions are pure: fresh output on every call, no shared state, safe to
// call concurrently.
package aggregate

import (
	"math"
	"strings"

	"github.com/sherlockhq/leakengine/internal/models"
)

const unknownChannel = "Unknown"

// ByChannel groups metric records by channel, sums sessions, purchases and
// revenue, then derives conversionRate and leakScore. Output rows appear in
// first-seen channel order. Empty input yields an empty slice.
func ByChannel(records []models.MetricRecord) []models.ChannelSeries {
	idx := make(map[string]int, len(records))
	out := make([]models.ChannelSeries, 0, len(records))
	for _, r := range records {
		ch := coalesce(r.Metrics.Channel, unknownChannel)
		i, ok := idx[ch]
		if !ok {
			i = len(out)
			idx[ch] = i
			out = append(out, models.ChannelSeries{Channel: ch})
		}
		out[i].Sessions += clampInt(r.Metrics.Sessions)
		out[i].Conversions += clampInt(r.Metrics.Purchases)
		out[i].Revenue += clampF(r.Metrics.Revenue)
	}
	for i := range out {
		out[i].ConversionRate = Rate(out[i].Conversions, out[i].Sessions)
		out[i].LeakScore = LeakScore(out[i].Sessions, out[i].Conversions)
	}
	return out
}

type leakKey struct {
	date     string
	leakType string
}

// ByLeakTypeAndDate buckets leak records by (UTC day, leak type), summing
// estimated impact and counting records per bucket. Callers are expected to
// pass only unresolved leaks; resolved rows are filtered upstream at the
// query. Bucket order is first-seen, so equal inputs produce equal output.
func ByLeakTypeAndDate(records []models.LeakRecord) []models.LeakSeriesPoint {
	idx := make(map[leakKey]int, len(records))
	out := make([]models.LeakSeriesPoint, 0, len(records))
	for _, r := range records {
		date := r.CreatedAt.UTC().Format("2006-01-02")
		k := leakKey{date: date, leakType: r.LeakType}
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, models.LeakSeriesPoint{
				Date:        date,
				LeakType:    r.LeakType,
				MaxSeverity: r.Severity,
			})
		}
		out[i].TotalImpact += clampF(r.EstimatedImpact)
		out[i].Count++
		if severityRank(r.Severity) > severityRank(out[i].MaxSeverity) {
			out[i].MaxSeverity = r.Severity
		}
	}
	return out
}

// SummarizeChannels builds the envelope totals for a channel series.
func SummarizeChannels(series []models.ChannelSeries) models.ChannelSummary {
	s := models.ChannelSummary{TotalChannels: len(series)}
	for _, c := range series {
		s.TotalSessions += c.Sessions
		s.TotalConversions += c.Conversions
		s.TotalRevenue += c.Revenue
	}
	return s
}

// SummarizeLeaks builds envelope totals from raw, unresolved leak records.
func SummarizeLeaks(records []models.LeakRecord) models.LeakSummary {
	s := models.LeakSummary{
		TotalLeaks:  len(records),
		LeaksByType: make(map[string]int, len(records)),
	}
	for _, r := range records {
		s.TotalLeakAmount += clampF(r.EstimatedImpact)
		s.LeaksByType[r.LeakType]++
		if r.Severity == "critical" {
			s.CriticalLeaks++
		}
	}
	return s
}

// SummarizeLeakPoints builds envelope totals from already-bucketed points.
// Used on the synthetic-data path, where no raw records exist.
func SummarizeLeakPoints(points []models.LeakSeriesPoint) models.LeakSummary {
	s := models.LeakSummary{LeaksByType: make(map[string]int, len(points))}
	for _, p := range points {
		s.TotalLeakAmount += p.TotalImpact
		s.TotalLeaks += p.Count
		s.LeaksByType[p.LeakType] += p.Count
		if p.MaxSeverity == "critical" {
			s.CriticalLeaks += p.Count
		}
	}
	return s
}

// Rate is conversions/sessions as a percentage, 0 when sessions is 0.
func Rate(conversions, sessions int) float64 {
	if sessions <= 0 {
		return 0
	}
	return float64(conversions) / float64(sessions) * 100
}

// LeakScore is the share of sessions that did not convert, floored at 0 so
// corrupt rows with conversions > sessions cannot yield a negative score.
func LeakScore(sessions, conversions int) float64 {
	if sessions <= 0 {
		return 0
	}
	score := float64(sessions-conversions) / float64(sessions) * 100
	if score < 0 {
		return 0
	}
	return score
}

func severityRank(s string) int {
	switch strings.ToLower(s) {
	case "critical":
		return 4
	case "high":
		return 3
	case "medium":
		return 2
	case "low":
		return 1
	}
	return 0
}

func coalesce(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}

// clampInt coerces an externally sourced number to a usable count: NaN,
// infinities and negatives become 0.
func clampInt(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return int(f)
}

func clampF(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
