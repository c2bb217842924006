package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/utils"
	"github.com/promptkeep/prompt-keeper/models"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository]. Category names are globally unique; collisions
// surface as [ErrCategoryNameTaken] via the unique_violation code.
type categoryRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateCategory persists a new category with a freshly generated
// identifier and returns the canonical database representation.
func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	category.ID = r.ids.Generate()
	row := r.db.QueryRowContext(ctx, createCategory, category.ID, category.Name, category.Description)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error: creating category failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Category{}, ErrCategoryNameTaken
		default:
			return models.Category{}, r.db.wrapUnexpected(err)
		}
	}

	if err := row.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt, &category.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Category{}, ErrCategoryNameTaken
		}
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error: scanning error")
		return models.Category{}, err
	}

	return category, nil
}

// GetAllCategories returns every category ordered by name.
func (r *categoryRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllCategories)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetAllCategories").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapUnexpected(err))
	}
	defer rows.Close()

	categories := make([]models.Category, 0, 16)

	for rows.Next() {
		var category models.Category
		if scanErr := rows.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt, &category.UpdatedAt); scanErr != nil {
			log.Err(scanErr).Str("func", "*categoryRepository.GetAllCategories").Msg("failed to scan category row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		categories = append(categories, category)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*categoryRepository.GetAllCategories").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return categories, nil
}

// GetCategoryByID retrieves a single category or [ErrCategoryNotFound].
func (r *categoryRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error) {
	log := logger.FromContext(ctx)

	var category models.Category
	row := r.db.QueryRowContext(ctx, getCategoryByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetCategoryByID").Msg("error: query failed")
		return models.Category{}, r.db.wrapUnexpected(err)
	}

	if err := row.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt, &category.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		log.Err(err).Str("func", "*categoryRepository.GetCategoryByID").Msg("error: scanning error")
		return models.Category{}, err
	}

	return category, nil
}

// UpdateCategory replaces the name and description of an existing
// category. Renaming onto an existing name fails with
// [ErrCategoryNameTaken]; a missing row fails with [ErrCategoryNotFound].
func (r *categoryRepository) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateCategory, category.ID, category.Name, category.Description)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*categoryRepository.UpdateCategory").Msg("error: updating category failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Category{}, ErrCategoryNameTaken
		default:
			return models.Category{}, r.db.wrapUnexpected(err)
		}
	}

	var updated models.Category
	if err := row.Scan(&updated.ID, &updated.Name, &updated.Description, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Category{}, ErrCategoryNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Category{}, ErrCategoryNameTaken
		}
		log.Err(err).Str("func", "*categoryRepository.UpdateCategory").Msg("error: scanning error")
		return models.Category{}, err
	}

	return updated, nil
}

// DeleteCategory removes a category. Prompts referencing it keep
// existing with their category cleared (ON DELETE SET NULL in the
// schema). A missing row fails with [ErrCategoryNotFound].
func (r *categoryRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCategory, id)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Msg("error: deleting category failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.wrapUnexpected(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
