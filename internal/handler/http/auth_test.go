package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptkeep/prompt-keeper/internal/service"
	"github.com/promptkeep/prompt-keeper/internal/store"
	"github.com/promptkeep/prompt-keeper/internal/utils"
	"github.com/promptkeep/prompt-keeper/models"
)

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	registered := models.User{UserID: 7, Email: "dev@example.com", Name: "Dev"}

	auth := &mockAuthService{
		registerFn: func(_ context.Context, email, password, name string) (models.User, error) {
			assert.Equal(t, "dev@example.com", email)
			assert.Equal(t, "s3cret-pass", password)
			assert.Equal(t, "Dev", name)
			return registered, nil
		},
		createTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
			require.Equal(t, registered.UserID, user.UserID)
			return models.Token{SignedString: "signed.jwt.token"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := jsonBody(t, credentials{Email: "dev@example.com", Password: "s3cret-pass", Name: "Dev"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, int64(7), resp.User.UserID)
	assert.Equal(t, "dev@example.com", resp.User.Email)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", strings.TrimSpace(rec.Body.String()))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(context.Context, string, string, string) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := jsonBody(t, credentials{Email: "dev@example.com", Password: "s3cret-pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegister_InvalidData(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(context.Context, string, string, string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := jsonBody(t, credentials{Email: "not-an-email"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(context.Context, string, string, string) (models.User, error) {
			return models.User{UserID: 7}, nil
		},
		createTokenFn: func(context.Context, models.User) (models.Token, error) {
			return models.Token{}, errors.New("signing failed")
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := jsonBody(t, credentials{Email: "dev@example.com", Password: "s3cret-pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "dev@example.com", email)
			assert.Equal(t, "s3cret-pass", password)
			return models.User{UserID: 7, Email: "dev@example.com"}, nil
		},
		createTokenFn: func(context.Context, models.User) (models.Token, error) {
			return models.Token{SignedString: "signed.jwt.token"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := jsonBody(t, credentials{Email: "dev@example.com", Password: "s3cret-pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, int64(7), resp.User.UserID)
}

// TestLogin_InvalidCredentials verifies that a failed login is reported
// with a generic message that does not reveal whether the email exists.
func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, string, string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := jsonBody(t, credentials{Email: "dev@example.com", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid credentials", strings.TrimSpace(rec.Body.String()))
}

func TestLogin_StoreUnavailable(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(context.Context, string, string) (models.User, error) {
			return models.User{}, store.ErrStoreUnavailable
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	body := jsonBody(t, credentials{Email: "dev@example.com", Password: "s3cret-pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "storage temporarily unavailable", strings.TrimSpace(rec.Body.String()))
}

// ─────────────────────────────────────────────
// me
// ─────────────────────────────────────────────

func TestMe_Success(t *testing.T) {
	auth := &mockAuthService{
		getUserFn: func(_ context.Context, userID int64) (models.User, error) {
			require.Equal(t, int64(7), userID)
			return models.User{UserID: 7, Email: "dev@example.com", Name: "Dev"}, nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, int64(7))
	rec := httptest.NewRecorder()

	h.me(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rec.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, "dev@example.com", user.Email)
}

// TestMe_StaleToken verifies that a valid token whose subject no longer
// exists yields 404 rather than an empty account.
func TestMe_StaleToken(t *testing.T) {
	auth := &mockAuthService{
		getUserFn: func(context.Context, int64) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, int64(42))
	rec := httptest.NewRecorder()

	h.me(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMe_NoIdentityInContext(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	h.me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestMe_ViaRouter_RequiresAuth verifies the route is registered behind
// the auth middleware.
func TestMe_ViaRouter_RequiresAuth(t *testing.T) {
	router := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
