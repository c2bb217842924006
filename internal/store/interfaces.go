package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/promptkeep/prompt-keeper/models"
)

// UserRepository persists account records.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// CategoryRepository persists category records.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// PromptRepository persists prompt records and performs the atomic
// engagement mutations (vote increment, comment append).
type PromptRepository interface {
	CreatePrompt(ctx context.Context, prompt models.Prompt) (models.Prompt, error)
	GetPromptByID(ctx context.Context, id uuid.UUID) (models.Prompt, error)

	// ListPrompts returns one page of prompts matching the query along
	// with the total number of matches.
	ListPrompts(ctx context.Context, query PromptQuery) ([]models.Prompt, int, error)

	UpdatePrompt(ctx context.Context, prompt models.Prompt) (models.Prompt, error)
	DeletePrompt(ctx context.Context, id uuid.UUID) error

	// IncrementVotes atomically adds one vote to a public prompt and
	// returns the new count. Returns ErrPromptNotFound when the prompt
	// is absent or not public.
	IncrementVotes(ctx context.Context, id uuid.UUID) (int, error)

	// AppendComment atomically appends a comment to a public prompt.
	// Returns ErrPromptNotFound when the prompt is absent or not public.
	AppendComment(ctx context.Context, id uuid.UUID, comment models.Comment) (models.Comment, error)
}

// ErrorClassificator decides whether a driver-level failure is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
