package http

import (
	"context"
	"net/http"

	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/service"
	"github.com/promptkeep/prompt-keeper/internal/utils"
)

// authTokenHeader carries the bearer token on protected routes. The raw
// compact JWS goes in the header value with no scheme prefix.
const authTokenHeader = "x-auth-token"

// auth is an HTTP middleware that enforces token-based authentication.
//
// It reads the x-auth-token header, validates the token via
// [service.AuthService.ParseToken], and on success stores the
// authenticated user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is
// absent or empty, or when the token is expired, malformed, or signed
// with the wrong key.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get(authTokenHeader)
		if tokenString == "" {
			log.Err(ErrEmptyAuthTokenHeader).Send()
			http.Error(w, ErrEmptyAuthTokenHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identify is the optional counterpart of auth for routes that work
// without a caller identity but record one when it is offered. A valid
// token attaches the user ID to the context; an absent or invalid token
// leaves the request anonymous instead of rejecting it.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get(authTokenHeader)
		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("ignoring invalid token on anonymous route")
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
