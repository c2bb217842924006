package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/promptkeep/prompt-keeper/models"
)

// AuthService manages account registration, credential verification, and
// the bearer-token lifecycle.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CategoryService manages the globally named prompt categories. Any
// authenticated caller may use every operation.
type CategoryService interface {
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetCategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) (models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// PromptInput carries the caller-supplied fields of a prompt create or
// update request.
type PromptInput struct {
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
	Variables   []models.Variable `json:"variables"`
	CategoryID  *uuid.UUID       `json:"categoryId"`
	IsPublic    bool             `json:"isPublic"`
	AuthorName  string           `json:"authorName"`
}

// ListOptions carries the pagination and filter parameters of a prompt
// listing request.
type ListOptions struct {
	Page       int
	Limit      int
	CategoryID *uuid.UUID
	Search     string
}

// PromptService manages prompt lifecycle, listings, and the public
// engagement operations, enforcing the ownership and visibility policy.
type PromptService interface {
	CreatePrompt(ctx context.Context, owner models.UserRef, input PromptInput) (models.Prompt, error)
	CreateAnonymousPrompt(ctx context.Context, input PromptInput) (models.Prompt, error)

	GetPrompt(ctx context.Context, id uuid.UUID, caller models.UserRef) (models.Prompt, error)
	GetPublicPrompt(ctx context.Context, id uuid.UUID) (models.Prompt, error)

	ListPrompts(ctx context.Context, owner models.UserRef, opts ListOptions) (models.PromptPage, error)
	ListPublicPrompts(ctx context.Context, opts ListOptions) (models.PromptPage, error)

	UpdatePrompt(ctx context.Context, id uuid.UUID, caller models.UserRef, input PromptInput) (models.Prompt, error)
	DeletePrompt(ctx context.Context, id uuid.UUID, caller models.UserRef) error

	VotePrompt(ctx context.Context, id uuid.UUID) (int, error)
	CommentPrompt(ctx context.Context, id uuid.UUID, text, authorName string, caller models.UserRef) (models.Comment, error)
}
