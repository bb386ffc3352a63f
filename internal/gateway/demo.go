package gateway

import (
	"math"
	"math/rand"
	"time"

	"github.com/sherlockhq/leakengine/internal/aggregate"
	"github.com/sherlockhq/leakengine/internal/models"
)

// Demonstration-data generators, used when the backend is unreachable so the
// dashboards always have something to draw.

type demoChannel struct {
	name        string
	sessionBase int
	convRate    float64
}

var demoChannels = []demoChannel{
	{"Google Ads", 2400, 2.1},
	{"Facebook", 1800, 1.8},
	{"Instagram", 1500, 1.5},
	{"TikTok", 1200, 2.3},
	{"Organic Search", 3200, 3.5},
	{"Email", 900, 4.2},
	{"Direct", 1600, 3.8},
}

var demoLeakTypes = []string{
	"cart_abandonment",
	"mobile_ux",
	"pricing_gap",
	"poor_conversion",
	"social_gap",
	"trust_signals",
	"checkout_friction",
	"seo_issues",
}

// DemoChannelData generates one plausible series row per demo channel.
// Pass nil for a time-seeded source; tests pass a fixed one.
func DemoChannelData(r *rand.Rand) []models.ChannelSeries {
	r = orSeeded(r)
	out := make([]models.ChannelSeries, 0, len(demoChannels))
	for _, ch := range demoChannels {
		sessions := ch.sessionBase + int(r.Float64()*400-200)
		rate := ch.convRate + r.Float64()*0.4 - 0.2
		conversions := int(float64(sessions) * rate / 100)
		avgOrder := 120 + r.Float64()*80
		out = append(out, models.ChannelSeries{
			Channel:        ch.name,
			Sessions:       sessions,
			Conversions:    conversions,
			Revenue:        float64(conversions) * avgOrder,
			ConversionRate: rate,
			LeakScore:      aggregate.LeakScore(sessions, conversions),
		})
	}
	return out
}

// DemoLeakData generates leak buckets every third day over the trailing
// window, one per demo leak type, with a slow sinusoidal trend on impact.
func DemoLeakData(r *rand.Rand, days int) []models.LeakSeriesPoint {
	r = orSeeded(r)
	if days <= 0 {
		days = 90
	}
	start := time.Now().UTC().AddDate(0, 0, -days)
	out := make([]models.LeakSeriesPoint, 0, (days/3+1)*len(demoLeakTypes))
	for i := 0; i < days; i += 3 {
		date := start.AddDate(0, 0, i).Format("2006-01-02")
		for _, lt := range demoLeakTypes {
			base := r.Float64()*50000 + 10000
			trend := math.Sin(float64(i)/10) * 20000
			impact := math.Max(0, base+trend)
			out = append(out, models.LeakSeriesPoint{
				Date:        date,
				LeakType:    lt,
				TotalImpact: impact,
				Count:       r.Intn(10) + 1,
				MaxSeverity: demoSeverity(impact),
			})
		}
	}
	return out
}

func demoSeverity(impact float64) string {
	switch {
	case impact >= 45000:
		return "critical"
	case impact >= 30000:
		return "high"
	case impact >= 18000:
		return "medium"
	}
	return "low"
}

func orSeeded(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
