// Package service answers dashboard queries: it pulls raw rows from the
// backend (or the cache), runs them through the aggregation core, and wraps
// the result in the response envelopes chart consumers expect. When the
// backend is unreachable the read paths silently substitute synthetic
// demonstration data; that failure is logged but never surfaced to the user.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/sherlockhq/leakengine/internal/aggregate"
	"github.com/sherlockhq/leakengine/internal/gateway"
	"github.com/sherlockhq/leakengine/internal/models"
	"github.com/sherlockhq/leakengine/internal/store"
)

// Backend is the slice of the gateway the dashboard reads need.
type Backend interface {
	ChannelMetrics(ctx context.Context, orgID string, days int) ([]models.MetricRecord, error)
	RevenueLeaks(ctx context.Context, orgID string, days int) ([]models.LeakRecord, error)
}

type Service struct {
	backend  Backend
	log      *slog.Logger
	channels *store.ResponseCache[[]models.MetricRecord]
	leaks    *store.ResponseCache[[]models.LeakRecord]
}

func New(backend Backend, log *slog.Logger, cacheTTL time.Duration) *Service {
	return &Service{
		backend:  backend,
		log:      log,
		channels: store.NewResponseCache[[]models.MetricRecord](cacheTTL),
		leaks:    store.NewResponseCache[[]models.LeakRecord](cacheTTL),
	}
}

// ChannelPerformance returns the aggregated channel series plus summary for
// an organization's trailing window. Never fails: backend errors fall back
// to generated demo data.
func (s *Service) ChannelPerformance(ctx context.Context, orgID string, days int) models.ChannelResponse {
	key := store.Key("channels", orgID, days)
	records, ok := s.channels.Get(key)
	if !ok {
		var err error
		records, err = s.backend.ChannelMetrics(ctx, orgID, days)
		if err != nil {
			s.log.Warn("channel metrics unavailable, serving demo data",
				slog.String("org", orgID), slog.String("err", err.Error()))
			series := gateway.DemoChannelData(nil)
			return models.ChannelResponse{
				Success: true,
				Data:    series,
				Summary: aggregate.SummarizeChannels(series),
			}
		}
		s.channels.Set(key, records)
	}

	series := aggregate.ByChannel(records)
	return models.ChannelResponse{
		Success: true,
		Data:    series,
		Summary: aggregate.SummarizeChannels(series),
	}
}

// RevenueLeaks returns bucketed unresolved leaks plus summary, with the same
// demo-data fallback as ChannelPerformance.
func (s *Service) RevenueLeaks(ctx context.Context, orgID string, days int) models.LeakResponse {
	key := store.Key("leaks", orgID, days)
	records, ok := s.leaks.Get(key)
	if !ok {
		var err error
		records, err = s.backend.RevenueLeaks(ctx, orgID, days)
		if err != nil {
			s.log.Warn("revenue leaks unavailable, serving demo data",
				slog.String("org", orgID), slog.String("err", err.Error()))
			points := gateway.DemoLeakData(nil, days)
			return models.LeakResponse{
				Success: true,
				Data:    points,
				Summary: aggregate.SummarizeLeakPoints(points),
			}
		}
		s.leaks.Set(key, records)
	}

	return models.LeakResponse{
		Success: true,
		Data:    aggregate.ByLeakTypeAndDate(records),
		Summary: aggregate.SummarizeLeaks(records),
	}
}
