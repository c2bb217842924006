package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/store"
	"github.com/promptkeep/prompt-keeper/internal/validators"
	"github.com/promptkeep/prompt-keeper/models"
)

// promptService is the concrete implementation of PromptService. It
// validates input, applies the ownership and visibility policy, and
// delegates persistence to a PromptRepository.
type promptService struct {
	promptRepository store.PromptRepository
	validator        validators.Validator
	logger           *logger.Logger
}

// NewPromptService constructs a PromptService wired to the given
// repository.
func NewPromptService(promptRepository store.PromptRepository, validator validators.Validator, logger *logger.Logger) PromptService {
	return &promptService{
		promptRepository: promptRepository,
		validator:        validator,
		logger:           logger,
	}
}

// CreatePrompt persists a new prompt owned by the given identity.
// Visibility defaults to private unless the input requests otherwise.
func (p *promptService) CreatePrompt(ctx context.Context, owner models.UserRef, input PromptInput) (models.Prompt, error) {
	log := logger.FromContext(ctx)

	if !owner.Valid {
		log.Error().Msg("owned prompt creation without an owner identity")
		return models.Prompt{}, ErrInvalidDataProvided
	}

	authorName := strings.TrimSpace(input.AuthorName)
	if authorName == "" {
		authorName = models.AnonymousAuthor
	}

	prompt := models.Prompt{
		Title:       input.Title,
		Content:     input.Content,
		Description: input.Description,
		Tags:        input.Tags,
		Variables:   input.Variables,
		Owner:       owner,
		AuthorName:  authorName,
		CategoryID:  input.CategoryID,
		IsPublic:    input.IsPublic,
	}
	if err := p.validator.Validate(ctx, prompt); err != nil {
		log.Err(err).Msg("invalid prompt provided")
		return models.Prompt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := p.promptRepository.CreatePrompt(ctx, prompt)
	if err != nil {
		log.Err(err).Msg("prompt creation ended with error")
		return models.Prompt{}, fmt.Errorf("prompt creation ended with error: %w", err)
	}

	return created, nil
}

// CreateAnonymousPrompt persists a prompt with no owning identity.
// Anonymous content is always public; the flag is forced here
// regardless of the input so no code path can create a private
// anonymous prompt.
func (p *promptService) CreateAnonymousPrompt(ctx context.Context, input PromptInput) (models.Prompt, error) {
	log := logger.FromContext(ctx)

	authorName := strings.TrimSpace(input.AuthorName)
	if authorName == "" {
		authorName = models.AnonymousAuthor
	}

	prompt := models.Prompt{
		Title:       input.Title,
		Content:     input.Content,
		Description: input.Description,
		Tags:        input.Tags,
		Variables:   input.Variables,
		AuthorName:  authorName,
		CategoryID:  input.CategoryID,
		IsPublic:    true,
	}
	if err := p.validator.Validate(ctx, prompt); err != nil {
		log.Err(err).Msg("invalid prompt provided")
		return models.Prompt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := p.promptRepository.CreatePrompt(ctx, prompt)
	if err != nil {
		log.Err(err).Msg("anonymous prompt creation ended with error")
		return models.Prompt{}, fmt.Errorf("anonymous prompt creation ended with error: %w", err)
	}

	return created, nil
}

// GetPrompt loads a prompt on behalf of a known caller and applies the
// read policy: public or owned prompts are returned, a private prompt
// of another user fails with ErrPromptAccessDenied.
func (p *promptService) GetPrompt(ctx context.Context, id uuid.UUID, caller models.UserRef) (models.Prompt, error) {
	prompt, err := p.promptRepository.GetPromptByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id.String()).Msg("prompt lookup ended with error")
		return models.Prompt{}, fmt.Errorf("prompt lookup ended with error: %w", err)
	}

	if err := CanReadPrompt(prompt, caller); err != nil {
		return models.Prompt{}, err
	}

	return prompt, nil
}

// GetPublicPrompt loads a prompt for an unauthenticated caller. A
// missing prompt and a private one are indistinguishable.
func (p *promptService) GetPublicPrompt(ctx context.Context, id uuid.UUID) (models.Prompt, error) {
	prompt, err := p.promptRepository.GetPromptByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id.String()).Msg("public prompt lookup ended with error")
		return models.Prompt{}, fmt.Errorf("public prompt lookup ended with error: %w", err)
	}

	if err := CanReadPrompt(prompt, models.UserRef{}); err != nil {
		return models.Prompt{}, err
	}

	return prompt, nil
}

// ListPrompts returns one page of the owner's prompts, most recently
// updated first.
func (p *promptService) ListPrompts(ctx context.Context, owner models.UserRef, opts ListOptions) (models.PromptPage, error) {
	if !owner.Valid {
		return models.PromptPage{}, ErrInvalidDataProvided
	}

	return p.list(ctx, store.PromptQuery{
		Owner:      owner,
		CategoryID: opts.CategoryID,
		Search:     opts.Search,
		Page:       opts.Page,
		Limit:      opts.Limit,
	})
}

// ListPublicPrompts returns one page of public prompts, most voted
// first with recency breaking ties.
func (p *promptService) ListPublicPrompts(ctx context.Context, opts ListOptions) (models.PromptPage, error) {
	return p.list(ctx, store.PromptQuery{
		PublicOnly: true,
		CategoryID: opts.CategoryID,
		Search:     opts.Search,
		Page:       opts.Page,
		Limit:      opts.Limit,
	})
}

func (p *promptService) list(ctx context.Context, query store.PromptQuery) (models.PromptPage, error) {
	query = query.Normalized()

	prompts, total, err := p.promptRepository.ListPrompts(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("prompt listing ended with error")
		return models.PromptPage{}, fmt.Errorf("prompt listing ended with error: %w", err)
	}

	return models.PromptPage{
		Prompts: prompts,
		Pagination: models.Pagination{
			Total: total,
			Page:  query.Page,
			Pages: (total + query.Limit - 1) / query.Limit,
		},
	}, nil
}

// UpdatePrompt replaces the mutable fields of a prompt after the write
// policy allows it: only the owning identity may update, and anonymous
// prompts are not updatable at all.
func (p *promptService) UpdatePrompt(ctx context.Context, id uuid.UUID, caller models.UserRef, input PromptInput) (models.Prompt, error) {
	log := logger.FromContext(ctx)

	prompt, err := p.promptRepository.GetPromptByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("prompt lookup ended with error")
		return models.Prompt{}, fmt.Errorf("prompt lookup ended with error: %w", err)
	}

	if err := CanWritePrompt(prompt, caller); err != nil {
		log.Debug().Str("id", id.String()).Msg("prompt update denied")
		return models.Prompt{}, err
	}

	prompt.Title = input.Title
	prompt.Content = input.Content
	prompt.Description = input.Description
	prompt.Tags = input.Tags
	prompt.Variables = input.Variables
	prompt.CategoryID = input.CategoryID
	prompt.IsPublic = input.IsPublic

	if err := p.validator.Validate(ctx, prompt); err != nil {
		log.Err(err).Msg("invalid prompt provided")
		return models.Prompt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := p.promptRepository.UpdatePrompt(ctx, prompt)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("prompt update ended with error")
		return models.Prompt{}, fmt.Errorf("prompt update ended with error: %w", err)
	}

	return updated, nil
}

// DeletePrompt removes a prompt after the write policy allows it.
func (p *promptService) DeletePrompt(ctx context.Context, id uuid.UUID, caller models.UserRef) error {
	log := logger.FromContext(ctx)

	prompt, err := p.promptRepository.GetPromptByID(ctx, id)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("prompt lookup ended with error")
		return fmt.Errorf("prompt lookup ended with error: %w", err)
	}

	if err := CanWritePrompt(prompt, caller); err != nil {
		log.Debug().Str("id", id.String()).Msg("prompt deletion denied")
		return err
	}

	if err := p.promptRepository.DeletePrompt(ctx, id); err != nil {
		log.Err(err).Str("id", id.String()).Msg("prompt deletion ended with error")
		return fmt.Errorf("prompt deletion ended with error: %w", err)
	}

	return nil
}

// VotePrompt registers one vote on a public prompt and returns the new
// count. The increment is atomic at the store; the repository reports
// an absent or private prompt as store.ErrPromptNotFound.
func (p *promptService) VotePrompt(ctx context.Context, id uuid.UUID) (int, error) {
	votes, err := p.promptRepository.IncrementVotes(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id.String()).Msg("prompt vote ended with error")
		return 0, fmt.Errorf("prompt vote ended with error: %w", err)
	}

	return votes, nil
}

// CommentPrompt appends a comment to a public prompt. Commenting is
// unauthenticated; when a caller identity is present it is recorded on
// the comment.
func (p *promptService) CommentPrompt(ctx context.Context, id uuid.UUID, text, authorName string, caller models.UserRef) (models.Comment, error) {
	log := logger.FromContext(ctx)

	authorName = strings.TrimSpace(authorName)
	if authorName == "" {
		authorName = models.AnonymousAuthor
	}

	comment := models.Comment{
		Text:       strings.TrimSpace(text),
		AuthorName: authorName,
		Owner:      caller,
		CreatedAt:  time.Now().UTC(),
	}
	if err := p.validator.Validate(ctx, comment); err != nil {
		log.Err(err).Str("id", id.String()).Msg("invalid comment provided")
		return models.Comment{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	appended, err := p.promptRepository.AppendComment(ctx, id, comment)
	if err != nil {
		log.Err(err).Str("id", id.String()).Msg("prompt comment ended with error")
		return models.Comment{}, fmt.Errorf("prompt comment ended with error: %w", err)
	}

	return appended, nil
}
