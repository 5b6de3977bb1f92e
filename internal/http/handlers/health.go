package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/hongminglow/user-service/internal/http/respond"
	"github.com/hongminglow/user-service/internal/logger"
	"github.com/hongminglow/user-service/internal/storage"
)

// HealthHandler returns uptime and whether the store answers.
type HealthHandler struct {
	startedAt time.Time
	store     storage.UserStore
}

// NewHealthHandler creates a health endpoint handler. The store is pinged
// when it implements storage.Pinger.
func NewHealthHandler(startedAt time.Time, store storage.UserStore) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, store: store}
}

// Register wires the handler into a ServeMux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handle)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{
		"status": "ok",
		"uptime": time.Since(h.startedAt).Truncate(time.Second).String(),
	}

	if p, ok := h.store.(storage.Pinger); ok {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			logger.Warn("health: store ping failed: %v", err)
			status["status"] = "degraded"
			respond.JSON(w, http.StatusServiceUnavailable, "store unavailable", status)
			return
		}
	}

	respond.JSON(w, http.StatusOK, "ok", status)
}
