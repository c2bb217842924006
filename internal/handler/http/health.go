package http

import (
	"net/http"
	"time"

	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/utils"
	"github.com/promptkeep/prompt-keeper/models"
)

// health reports process liveness and the reachability of the backing
// store. The endpoint itself answers 200 even when the database ping
// fails; the body carries the degraded state.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	database := "connected"
	if err := h.db.PingContext(ctx); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check database ping failed")
		database = "disconnected"
	}

	utils.WriteJSON(w, models.HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Database:    database,
		Environment: h.cfg.App.Environment,
	}, http.StatusOK)
}
