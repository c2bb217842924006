package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/service"
	"github.com/promptkeep/prompt-keeper/internal/utils"
)

func (h *Handler) createPrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input service.PromptInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.PromptService.CreatePrompt(ctx, utils.CallerFromContext(ctx), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listPrompts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := h.services.PromptService.ListPrompts(ctx, utils.CallerFromContext(ctx), listOptionsFromQuery(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getPrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	prompt, err := h.services.PromptService.GetPrompt(ctx, id, utils.CallerFromContext(ctx))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, prompt, http.StatusOK)
}

func (h *Handler) updatePrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	var input service.PromptInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.PromptService.UpdatePrompt(ctx, id, utils.CallerFromContext(ctx), input)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePrompt(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	if err := h.services.PromptService.DeletePrompt(ctx, id, utils.CallerFromContext(ctx)); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listOptionsFromQuery extracts pagination and filter parameters from
// the URL query. Unparsable numbers fall back to the defaults and a bad
// category value is ignored rather than rejected.
func listOptionsFromQuery(r *http.Request) service.ListOptions {
	query := r.URL.Query()

	opts := service.ListOptions{
		Search: query.Get("search"),
	}
	if page, err := strconv.Atoi(query.Get("page")); err == nil {
		opts.Page = page
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		opts.Limit = limit
	}
	if categoryID, err := uuid.Parse(query.Get("category")); err == nil {
		opts.CategoryID = &categoryID
	}

	return opts
}
