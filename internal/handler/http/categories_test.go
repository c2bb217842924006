package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptkeep/prompt-keeper/internal/service"
	"github.com/promptkeep/prompt-keeper/internal/store"
	"github.com/promptkeep/prompt-keeper/models"
)

func TestCreateCategory_Success(t *testing.T) {
	categoryID := uuid.New()
	categories := &mockCategoryService{
		createCategoryFn: func(_ context.Context, category models.Category) (models.Category, error) {
			assert.Equal(t, "Engineering", category.Name)
			category.ID = categoryID
			return category, nil
		},
	}
	router := newTestHandler(t, &service.Services{
		AuthService:     tokenForUser(7),
		CategoryService: categories,
	}).Init()

	body := jsonBody(t, categoryInput{Name: "Engineering", Description: "Dev prompts"})
	rec := doAuthed(t, router, http.MethodPost, "/api/categories/", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, categoryID, created.ID)
}

func TestCreateCategory_NameTaken(t *testing.T) {
	categories := &mockCategoryService{
		createCategoryFn: func(context.Context, models.Category) (models.Category, error) {
			return models.Category{}, store.ErrCategoryNameTaken
		},
	}
	router := newTestHandler(t, &service.Services{
		AuthService:     tokenForUser(7),
		CategoryService: categories,
	}).Init()

	body := jsonBody(t, categoryInput{Name: "Engineering"})
	rec := doAuthed(t, router, http.MethodPost, "/api/categories/", body)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListCategories_Success(t *testing.T) {
	categories := &mockCategoryService{
		getAllCategoriesFn: func(context.Context) ([]models.Category, error) {
			return []models.Category{
				{ID: uuid.New(), Name: "Engineering"},
				{ID: uuid.New(), Name: "Marketing"},
			}, nil
		},
	}
	router := newTestHandler(t, &service.Services{
		AuthService:     tokenForUser(7),
		CategoryService: categories,
	}).Init()

	rec := doAuthed(t, router, http.MethodGet, "/api/categories/", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestGetCategory_NotFound(t *testing.T) {
	categories := &mockCategoryService{
		getCategoryByIDFn: func(context.Context, uuid.UUID) (models.Category, error) {
			return models.Category{}, store.ErrCategoryNotFound
		},
	}
	router := newTestHandler(t, &service.Services{
		AuthService:     tokenForUser(7),
		CategoryService: categories,
	}).Init()

	rec := doAuthed(t, router, http.MethodGet, "/api/categories/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateCategory_PassesID(t *testing.T) {
	categoryID := uuid.New()
	categories := &mockCategoryService{
		updateCategoryFn: func(_ context.Context, category models.Category) (models.Category, error) {
			assert.Equal(t, categoryID, category.ID)
			assert.Equal(t, "Renamed", category.Name)
			return category, nil
		},
	}
	router := newTestHandler(t, &service.Services{
		AuthService:     tokenForUser(7),
		CategoryService: categories,
	}).Init()

	body := jsonBody(t, categoryInput{Name: "Renamed"})
	rec := doAuthed(t, router, http.MethodPut, "/api/categories/"+categoryID.String(), body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteCategory_Success(t *testing.T) {
	categories := &mockCategoryService{
		deleteCategoryFn: func(context.Context, uuid.UUID) error { return nil },
	}
	router := newTestHandler(t, &service.Services{
		AuthService:     tokenForUser(7),
		CategoryService: categories,
	}).Init()

	rec := doAuthed(t, router, http.MethodDelete, "/api/categories/"+uuid.NewString(), "")

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

// TestCategories_RequireAuth verifies that the category routes reject
// unauthenticated requests before touching any handler.
func TestCategories_RequireAuth(t *testing.T) {
	router := newTestHandler(t, &service.Services{
		AuthService:     &mockAuthService{},
		CategoryService: &mockCategoryService{},
	}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/categories/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
