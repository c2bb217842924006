package http

import (
	"context"

	"github.com/promptkeep/prompt-keeper/internal/config"
	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/service"
	"github.com/promptkeep/prompt-keeper/internal/workers"
)

// Pinger reports whether the backing store is reachable. Satisfied by
// [database/sql.DB].
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler holds the dependencies shared by all HTTP route handlers.
type Handler struct {
	services *service.Services
	cfg      *config.StructuredConfig
	db       Pinger
	workers  *workers.Workers

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, db Pinger, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		db:       db,
		logger:   logger,
	}
}

// StopWorkers terminates the background goroutines started by Init.
// Safe to call on a handler whose routes were never wired.
func (h *Handler) StopWorkers() {
	if h.workers != nil {
		h.workers.Stop()
	}
}
