package http

import (
	"encoding/json"
	"net/http"

	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/utils"
	"github.com/promptkeep/prompt-keeper/models"
)

// credentials is the request body shared by register and login.
type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, creds.Email, creds.Password, creds.Name)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: registeredUser}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: foundUser}, http.StatusOK)
}

// me returns the account behind the presented token. A token whose
// subject no longer exists yields 404.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in context on authenticated route")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
