package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/store"
	"github.com/promptkeep/prompt-keeper/internal/validators"
	"github.com/promptkeep/prompt-keeper/models"
)

// categoryService is the concrete implementation of CategoryService.
// There is no per-category ownership: every authenticated caller may
// create, rename, and delete categories. Name uniqueness is enforced by
// the repository.
type categoryService struct {
	categoryRepository store.CategoryRepository
	validator          validators.Validator
	logger             *logger.Logger
}

// NewCategoryService constructs a CategoryService wired to the given
// repository.
func NewCategoryService(categoryRepository store.CategoryRepository, validator validators.Validator, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		validator:          validator,
		logger:             logger,
	}
}

// CreateCategory validates and persists a new category.
//
// Returns ErrInvalidDataProvided for an empty name, or a wrapped storage
// error (store.ErrCategoryNameTaken on a name collision).
func (c *categoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	category.Name = strings.TrimSpace(category.Name)
	if err := c.validator.Validate(ctx, category); err != nil {
		log.Err(err).Msg("invalid category provided")
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := c.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("name", category.Name).Msg("category creation ended with error")
		return models.Category{}, fmt.Errorf("category creation ended with error: %w", err)
	}

	return created, nil
}

// GetAllCategories returns every category ordered by name.
func (c *categoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := c.categoryRepository.GetAllCategories(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("category listing ended with error")
		return nil, fmt.Errorf("category listing ended with error: %w", err)
	}

	return categories, nil
}

// GetCategoryByID returns a single category or a wrapped
// store.ErrCategoryNotFound.
func (c *categoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error) {
	category, err := c.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id.String()).Msg("category lookup ended with error")
		return models.Category{}, fmt.Errorf("category lookup ended with error: %w", err)
	}

	return category, nil
}

// UpdateCategory validates and replaces a category's name and
// description.
func (c *categoryService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	category.Name = strings.TrimSpace(category.Name)
	if err := c.validator.Validate(ctx, category); err != nil {
		log.Err(err).Msg("invalid category provided")
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := c.categoryRepository.UpdateCategory(ctx, category)
	if err != nil {
		log.Err(err).Str("id", category.ID.String()).Msg("category update ended with error")
		return models.Category{}, fmt.Errorf("category update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteCategory removes a category; prompts referencing it keep
// existing with their category reference cleared by the schema.
func (c *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := c.categoryRepository.DeleteCategory(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id.String()).Msg("category deletion ended with error")
		return fmt.Errorf("category deletion ended with error: %w", err)
	}

	return nil
}
