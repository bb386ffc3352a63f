package models

import "time"

// MetricRecord is one channel-attribution row as returned by the backend
// metrics table. Rows are never mutated after ingestion.
type MetricRecord struct {
	CreatedAt  time.Time     `json:"created_at"`
	MetricType string        `json:"metric_type"`
	Metrics    ChannelFields `json:"metrics"`
}

// ChannelFields is the nested metrics payload of a MetricRecord. Values come
// from an external source and may be absent; absent decodes to zero.
type ChannelFields struct {
	Channel   string  `json:"channel"`
	Sessions  float64 `json:"sessions"`
	Purchases float64 `json:"purchases"`
	Revenue   float64 `json:"revenue"`
}

// LeakRecord is one revenue-leak detection row from the backend.
type LeakRecord struct {
	CreatedAt       time.Time `json:"created_at"`
	LeakType        string    `json:"leak_type"`
	EstimatedImpact float64   `json:"estimated_impact"`
	Severity        string    `json:"severity"`
	IsResolved      bool      `json:"is_resolved"`
}

// ChannelSeries is one chart-ready row per channel. ConversionRate and
// LeakScore are derived after summation; both are 0 when Sessions is 0, and
// LeakScore is floored at 0 when conversions exceed sessions (corrupt input).
type ChannelSeries struct {
	Channel        string  `json:"channel"`
	Sessions       int     `json:"sessions"`
	Conversions    int     `json:"conversions"`
	Revenue        float64 `json:"revenue"`
	ConversionRate float64 `json:"conversionRate"`
	LeakScore      float64 `json:"leakScore"`
}

// LeakSeriesPoint is one stacked-area bucket keyed by (day, leak type).
type LeakSeriesPoint struct {
	Date        string  `json:"date"`
	LeakType    string  `json:"leak_type"`
	TotalImpact float64 `json:"total_impact"`
	Count       int     `json:"count"`
	MaxSeverity string  `json:"max_severity"`
}

type ChannelSummary struct {
	TotalChannels    int     `json:"totalChannels"`
	TotalSessions    int     `json:"totalSessions"`
	TotalConversions int     `json:"totalConversions"`
	TotalRevenue     float64 `json:"totalRevenue"`
}

type LeakSummary struct {
	TotalLeakAmount float64        `json:"totalLeakAmount"`
	TotalLeaks      int            `json:"totalLeaks"`
	LeaksByType     map[string]int `json:"leaksByType"`
	CriticalLeaks   int            `json:"criticalLeaks"`
}

// ChannelResponse is the envelope served to chart consumers; field names are
// part of the wire contract.
type ChannelResponse struct {
	Success bool            `json:"success"`
	Data    []ChannelSeries `json:"data"`
	Summary ChannelSummary  `json:"summary"`
}

type LeakResponse struct {
	Success bool              `json:"success"`
	Data    []LeakSeriesPoint `json:"data"`
	Summary LeakSummary       `json:"summary"`
}

// SelectionKind tags what the user clicked on a chart.
type SelectionKind string

const (
	SelectionNone    SelectionKind = "none"
	SelectionLeak    SelectionKind = "revenue_leak"
	SelectionChannel SelectionKind = "channel"
)

type LeakSelection struct {
	LeakType string  `json:"leak_type"`
	Impact   float64 `json:"impact"`
	Date     string  `json:"date"`
}

type ChannelSelection struct {
	Channel     string  `json:"channel"`
	Sessions    int     `json:"sessions"`
	Conversions int     `json:"conversions"`
	Revenue     float64 `json:"revenue"`
}

// SelectionContext carries a single chart selection. Exactly one of Leak or
// Channel is set, matching Kind; a new selection replaces the previous one.
type SelectionContext struct {
	Kind    SelectionKind     `json:"type"`
	Leak    *LeakSelection    `json:"leak,omitempty"`
	Channel *ChannelSelection `json:"channel,omitempty"`
}

// Message is one entry in a conversation log. Logs are append-only and live
// only for the session.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CartAbandonmentRequest is the body of the cart-abandonment analysis call.
type CartAbandonmentRequest struct {
	OrganizationID string          `json:"organizationId"`
	AnalysisType   string          `json:"analysisType,omitempty"`
	StoreAnalytics *StoreAnalytics `json:"storeAnalytics,omitempty"`
}

// StoreAnalytics describes the store profile sent to the analysis function.
type StoreAnalytics struct {
	MonthlyRevenue          float64 `json:"monthlyRevenue"`
	AverageOrderValue       float64 `json:"averageOrderValue"`
	ConversionRate          float64 `json:"conversionRate"`
	CartAbandonmentRate     float64 `json:"cartAbandonmentRate"`
	MobileTrafficPercentage float64 `json:"mobileTrafficPercentage"`
}

// DefaultStoreAnalytics is the assumed profile when the caller sends none.
func DefaultStoreAnalytics() *StoreAnalytics {
	return &StoreAnalytics{
		MonthlyRevenue:          450000,
		AverageOrderValue:       75,
		ConversionRate:          2.5,
		CartAbandonmentRate:     68,
		MobileTrafficPercentage: 60,
	}
}

type DashboardDataRequest struct {
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id,omitempty"`
}
