// Package gateway is the boundary to the managed analytics backend. It
// fetches raw metric and leak rows, invokes the backend's analysis
// functions, and generates synthetic demonstration data for callers that
// need a fallback when the backend is unreachable. Retries and timeouts
// live here; nothing in the aggregation core performs I/O.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/sherlockhq/leakengine/internal/models"
	"github.com/sherlockhq/leakengine/internal/utils"
)

type Gateway struct {
	c       HTTPClient
	baseURL string
	apiKey  string
	log     *slog.Logger
	retry   utils.Backoff
	now     func() time.Time
}

func New(c HTTPClient, baseURL, apiKey string, log *slog.Logger) *Gateway {
	return &Gateway{
		c:       c,
		baseURL: baseURL,
		apiKey:  apiKey,
		log:     log,
		retry:   utils.NewBackoff(100*time.Millisecond, 150*time.Millisecond, 2),
		now:     time.Now,
	}
}

// ChannelMetrics fetches channel-attribution rows for the organization over
// the trailing window. Read queries retry transient failures before giving
// up; the caller decides whether to substitute demo data.
func (g *Gateway) ChannelMetrics(ctx context.Context, orgID string, days int) ([]models.MetricRecord, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("organization_id", "eq."+orgID)
	q.Set("metric_type", "eq.channel_attribution")
	q.Set("created_at", "gte."+g.windowStart(days))
	q.Set("order", "created_at.asc")

	var out []models.MetricRecord
	err := g.retry.Do(ctx, func(attempt int) error {
		out = nil
		if attempt > 0 {
			g.log.Debug("retrying channel metrics query", slog.Int("attempt", attempt))
		}
		return g.getJSON(ctx, g.baseURL+"/rest/v1/ga4_metrics?"+q.Encode(), &out)
	})
	if err != nil {
		return nil, fmt.Errorf("channel metrics query: %w", err)
	}
	return out, nil
}

// RevenueLeaks fetches unresolved leak detections over the trailing window.
// The is_resolved filter is applied here at the query, so downstream
// aggregation can assume every row is an open leak.
func (g *Gateway) RevenueLeaks(ctx context.Context, orgID string, days int) ([]models.LeakRecord, error) {
	q := url.Values{}
	q.Set("select", "created_at,leak_type,estimated_impact,severity")
	q.Set("organization_id", "eq."+orgID)
	q.Set("is_resolved", "eq.false")
	q.Set("created_at", "gte."+g.windowStart(days))
	q.Set("order", "created_at.asc")

	var out []models.LeakRecord
	err := g.retry.Do(ctx, func(attempt int) error {
		out = nil
		if attempt > 0 {
			g.log.Debug("retrying revenue leaks query", slog.Int("attempt", attempt))
		}
		return g.getJSON(ctx, g.baseURL+"/rest/v1/revenue_leak_detections?"+q.Encode(), &out)
	})
	if err != nil {
		return nil, fmt.Errorf("revenue leaks query: %w", err)
	}
	return out, nil
}

// AnalyzeCartAbandonment invokes the backend's cart-abandonment analysis
// function. Analysis calls are not retried; they are expensive on the
// backend side and the caller surfaces failures directly.
func (g *Gateway) AnalyzeCartAbandonment(ctx context.Context, req models.CartAbandonmentRequest) (map[string]any, error) {
	if req.AnalysisType == "" {
		req.AnalysisType = "comprehensive"
	}
	if req.StoreAnalytics == nil {
		req.StoreAnalytics = models.DefaultStoreAnalytics()
	}
	var out map[string]any
	if err := g.postJSON(ctx, g.baseURL+"/functions/v1/cart-abandonment-analysis", req, &out); err != nil {
		return nil, fmt.Errorf("cart abandonment analysis: %w", err)
	}
	return out, nil
}

// DashboardData invokes the backend's dashboard UI data function.
func (g *Gateway) DashboardData(ctx context.Context, req models.DashboardDataRequest) (map[string]any, error) {
	var out map[string]any
	if err := g.postJSON(ctx, g.baseURL+"/functions/v1/dashboard-ui-data", req, &out); err != nil {
		return nil, fmt.Errorf("dashboard data: %w", err)
	}
	return out, nil
}

func (g *Gateway) windowStart(days int) string {
	return g.now().UTC().AddDate(0, 0, -days).Format(time.RFC3339)
}
