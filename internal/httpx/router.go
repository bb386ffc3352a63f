package httpx

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sherlockhq/leakengine/internal/insight"
	"github.com/sherlockhq/leakengine/internal/models"
	"github.com/sherlockhq/leakengine/internal/obs"
	"github.com/sherlockhq/leakengine/internal/service"
	"github.com/sherlockhq/leakengine/internal/store"
	"github.com/sherlockhq/leakengine/internal/utils"
)

const defaultWindowDays = 90

// AnalysisBackend is the slice of the gateway used by the proxy endpoints.
type AnalysisBackend interface {
	AnalyzeCartAbandonment(ctx context.Context, req models.CartAbandonmentRequest) (map[string]any, error)
	DashboardData(ctx context.Context, req models.DashboardDataRequest) (map[string]any, error)
}

func NewRouter(log *slog.Logger, svc *service.Service, backend AnalysisBackend, comp *insight.Composer, conv *store.ConversationStore) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(obs.Metrics)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", obs.Handler())

	mux.Get("/api/channel-performance", func(w http.ResponseWriter, r *http.Request) {
		orgID := r.URL.Query().Get("organizationId")
		if orgID == "" {
			writeError(w, http.StatusBadRequest, "organizationId required")
			return
		}
		days := atoiDef(r.URL.Query().Get("days"), defaultWindowDays)
		writeJSON(w, http.StatusOK, svc.ChannelPerformance(r.Context(), orgID, days))
	})

	mux.Get("/api/revenue-leaks", func(w http.ResponseWriter, r *http.Request) {
		orgID := r.URL.Query().Get("organizationId")
		if orgID == "" {
			writeError(w, http.StatusBadRequest, "organizationId required")
			return
		}
		days := atoiDef(r.URL.Query().Get("days"), defaultWindowDays)
		writeJSON(w, http.StatusOK, svc.RevenueLeaks(r.Context(), orgID, days))
	})

	mux.Post("/api/cart-abandonment", func(w http.ResponseWriter, r *http.Request) {
		var req models.CartAbandonmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.OrganizationID == "" {
			writeError(w, http.StatusBadRequest, "organizationId required")
			return
		}
		data, err := backend.AnalyzeCartAbandonment(r.Context(), req)
		if err != nil {
			log.Error("cart abandonment analysis failed", slog.String("err", err.Error()))
			writeError(w, http.StatusInternalServerError, "failed to analyze cart abandonment")
			return
		}
		if data == nil {
			data = map[string]any{}
		}
		data["success"] = true
		writeJSON(w, http.StatusOK, data)
	})

	mux.Post("/api/dashboard-data", func(w http.ResponseWriter, r *http.Request) {
		var req models.DashboardDataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if req.UserID == "" {
			writeError(w, http.StatusBadRequest, "user_id required")
			return
		}
		data, err := backend.DashboardData(r.Context(), req)
		if err != nil {
			log.Error("dashboard data fetch failed", slog.String("err", err.Error()))
			writeError(w, http.StatusInternalServerError, "failed to fetch dashboard data")
			return
		}
		if data == nil {
			data = map[string]any{}
		}
		data["success"] = true
		writeJSON(w, http.StatusOK, data)
	})

	mux.Post("/api/insight", func(w http.ResponseWriter, r *http.Request) {
		sel, err := decodeSelection(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		msg := comp.Compose(sel)
		if msg == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		sessionID := r.URL.Query().Get("sessionId")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		conv.Append(sessionID, msg)
		writeJSON(w, http.StatusOK, insightReply{SessionID: sessionID, Message: *msg})
	})

	mux.Get("/api/insight/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
		sessionID := chi.URLParam(r, "sessionID")
		writeJSON(w, http.StatusOK, historyReply{
			SessionID: sessionID,
			Messages:  conv.History(sessionID),
		})
	})

	return mux
}

type insightReply struct {
	SessionID string         `json:"sessionId"`
	Message   models.Message `json:"message"`
}

type historyReply struct {
	SessionID string           `json:"sessionId"`
	Messages  []models.Message `json:"messages"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func atoiDef(s string, d int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return d
	}
	return v
}
