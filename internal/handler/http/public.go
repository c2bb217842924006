package http

import (
	"encoding/json"
	"net/http"

	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/service"
	"github.com/promptkeep/prompt-keeper/internal/utils"
	"github.com/promptkeep/prompt-keeper/models"
)

// commentInput is the request body for the public comment route.
type commentInput struct {
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
}

func (h *Handler) listPublicPrompts(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.PromptService.ListPublicPrompts(r.Context(), listOptionsFromQuery(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getPublicPrompt(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	prompt, err := h.services.PromptService.GetPublicPrompt(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, prompt, http.StatusOK)
}

func (h *Handler) createAnonymousPrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input service.PromptInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PromptService.CreateAnonymousPrompt(ctx, input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) votePrompt(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	votes, err := h.services.PromptService.VotePrompt(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.VoteResponse{Votes: votes}, http.StatusOK)
}

func (h *Handler) commentPrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	var input commentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	comment, err := h.services.PromptService.CommentPrompt(ctx, id, input.Text, input.AuthorName, utils.CallerFromContext(ctx))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, comment, http.StatusCreated)
}
