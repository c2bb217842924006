package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/promptkeep/prompt-keeper/internal/config"
	"github.com/promptkeep/prompt-keeper/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// stop signal before the listener is torn down.
const shutdownTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(routes http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           http.TimeoutHandler(routes, cfg.RequestTimeout, http.StatusText(http.StatusServiceUnavailable)),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server ListenAndServe failed")
	}
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown failed")
	}
}
