package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptkeep/prompt-keeper/internal/config"
	httphandler "github.com/promptkeep/prompt-keeper/internal/handler/http"
	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/service"
)

func testHandler() *httphandler.Handler {
	cfg := &config.StructuredConfig{}
	cfg.Server.AuthRateLimit = config.RateLimit{Window: config.DefaultRateLimitWindow, Max: config.DefaultAuthRateMax}
	cfg.Server.PublicRateLimit = config.RateLimit{Window: config.DefaultRateLimitWindow, Max: config.DefaultPublicRateMax}
	return httphandler.NewHandler(&service.Services{}, cfg, nil, logger.Nop())
}

func TestNewServer_Success(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "127.0.0.1:0",
		RequestTimeout: 30 * time.Second,
		AuthRateLimit:  config.RateLimit{Window: config.DefaultRateLimitWindow, Max: config.DefaultAuthRateMax},
	}

	srv, err := NewServer(testHandler(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)

	// A freshly created server can be shut down without being run.
	srv.Shutdown()
}

func TestNewServer_NoAddress(t *testing.T) {
	srv, err := NewServer(testHandler(), config.Server{}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, srv)
}

func TestNewHTTPServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "127.0.0.1:0",
		RequestTimeout: time.Minute,
	}

	h := newHTTPServer(testHandler().Init(), cfg, logger.Nop())

	require.NotNil(t, h.server)
	assert.Equal(t, "127.0.0.1:0", h.server.Addr)
	assert.Equal(t, 5*time.Second, h.server.ReadHeaderTimeout)
	assert.NotNil(t, h.server.Handler)
}
