package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/sherlockhq/leakengine/internal/benchmark"
	"github.com/sherlockhq/leakengine/internal/config"
	"github.com/sherlockhq/leakengine/internal/gateway"
	"github.com/sherlockhq/leakengine/internal/httpx"
	"github.com/sherlockhq/leakengine/internal/insight"
	"github.com/sherlockhq/leakengine/internal/service"
	"github.com/sherlockhq/leakengine/internal/store"
)

func main() {
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	cl := gateway.NewHTTPClient(cfg.HTTPTimeout)
	gw := gateway.New(cl, cfg.SupabaseURL, cfg.SupabaseKey, logger)
	svc := service.New(gw, logger, cfg.CacheTTL)
	comp := insight.New(benchmark.New(nil, 0, cfg.AvgOrderValue))
	conv := store.NewConversationStore()

	r := httpx.NewRouter(logger, svc, gw, comp, conv)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
