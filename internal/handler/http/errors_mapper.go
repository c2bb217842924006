package http

import (
	"errors"
	"net/http"

	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/service"
	"github.com/promptkeep/prompt-keeper/internal/store"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is ordered: repositories wrap retryable failures as both
// ErrExecutingQuery and ErrStoreUnavailable in one chain, so the transient
// sentinel must be matched before the generic execution ones.
var errorStatuses = []errorStatus{
	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusBadRequest},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrNotPromptOwner, http.StatusForbidden},
	{service.ErrPromptAccessDenied, http.StatusForbidden},
	{service.ErrPromptNotVisible, http.StatusNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrCategoryNameTaken, http.StatusConflict},
	{store.ErrCategoryNotFound, http.StatusNotFound},
	{store.ErrPromptNotFound, http.StatusNotFound},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// errorMessageMap overrides the client-facing message for errors whose
// sentinel text would leak more than the API contract allows. A private
// prompt and a missing one must read identically to an outsider.
var errorMessageMap = map[error]string{
	service.ErrInvalidCredentials: "invalid credentials",
	service.ErrPromptNotVisible:   "prompt not found",
	store.ErrStoreUnavailable:     "storage temporarily unavailable",
}

// mapError resolves err to the HTTP status and client-facing message of
// the first matching sentinel. Unmatched errors become opaque 500s.
func mapError(err error) (int, string) {
	for _, entry := range errorStatuses {
		if !errors.Is(err, entry.target) {
			continue
		}
		if message, ok := errorMessageMap[entry.target]; ok {
			return entry.status, message
		}
		if entry.status == http.StatusInternalServerError {
			return entry.status, http.StatusText(entry.status)
		}
		return entry.status, entry.target.Error()
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// handleError logs err and writes the mapped status and message.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := mapError(err)

	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")
	http.Error(w, message, status)
}
