package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptkeep/prompt-keeper/internal/service"
)

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name            string
		requestTraceID  string
		wantSameTraceID bool // response header must echo requestTraceID
		wantValidUUID   bool // response header must be a generated UUID
	}{
		{
			name:            "trace ID from request header is reused",
			requestTraceID:  "my-custom-trace-id",
			wantSameTraceID: true,
		},
		{
			name:           "no trace ID in request generates a UUID",
			requestTraceID: "",
			wantValidUUID:  true,
		},
		{
			name:            "incoming UUID is preserved as-is",
			requestTraceID:  "550e8400-e29b-41d4-a716-446655440000",
			wantSameTraceID: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{})
			nextCalled := false

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			rec := httptest.NewRecorder()

			h.withTraceID(next).ServeHTTP(rec, req)

			responseTraceID := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, responseTraceID)
			assert.True(t, nextCalled)

			if tt.wantSameTraceID {
				assert.Equal(t, tt.requestTraceID, responseTraceID)
			}
			if tt.wantValidUUID {
				_, err := uuid.Parse(responseTraceID)
				assert.NoError(t, err)
			}
		})
	}
}
