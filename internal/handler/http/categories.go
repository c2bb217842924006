package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/utils"
	"github.com/promptkeep/prompt-keeper/models"
)

// categoryInput is the request body for category create and update.
type categoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input categoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.CategoryService.CreateCategory(ctx, models.Category{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.GetAllCategories(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	category, err := h.services.CategoryService.GetCategoryByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, category, http.StatusOK)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	var input categoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.CategoryService.UpdateCategory(ctx, models.Category{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resourceID(w, r)
	if !ok {
		return
	}

	if err := h.services.CategoryService.DeleteCategory(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// resourceID parses the {id} route segment. A malformed UUID is a 400
// before any lookup happens.
func (h *Handler) resourceID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("id", chi.URLParam(r, "id")).Msg("malformed resource id")
		http.Error(w, ErrMalformedResourceID.Error(), http.StatusBadRequest)
		return uuid.UUID{}, false
	}
	return id, true
}
