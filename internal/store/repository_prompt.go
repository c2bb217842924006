package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/utils"
	"github.com/promptkeep/prompt-keeper/models"
)

// promptRepository is the PostgreSQL-backed implementation of
// [PromptRepository]. Prompts live in a single "prompts" table with the
// document-shaped fields (tags, variables, voters, comments) stored as
// JSONB, so every mutation — including the vote increment and the
// comment append — is one atomic statement on one row.
type promptRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
}

// NewPromptRepository constructs a [PromptRepository] backed by the
// provided database connection and logger.
func NewPromptRepository(db *DB, logger *logger.Logger) PromptRepository {
	logger.Debug().Msg("creating prompt repository")
	return &promptRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// promptRow adapts sql.Row / sql.Rows for the shared scan helper.
type promptRow interface {
	Scan(dest ...any) error
}

// scanPrompt reads one full prompt record, decoding the JSONB columns
// and the optional owner/category references.
func scanPrompt(row promptRow) (models.Prompt, error) {
	var (
		prompt     models.Prompt
		tags       []byte
		variables  []byte
		voters     []byte
		comments   []byte
		owner      sql.NullInt64
		categoryID uuid.NullUUID
	)

	err := row.Scan(
		&prompt.ID,
		&prompt.Title,
		&prompt.Content,
		&prompt.Description,
		&tags,
		&variables,
		&owner,
		&prompt.AuthorName,
		&categoryID,
		&prompt.IsPublic,
		&prompt.Votes,
		&voters,
		&comments,
		&prompt.CreatedAt,
		&prompt.UpdatedAt,
	)
	if err != nil {
		return models.Prompt{}, err
	}

	if owner.Valid {
		prompt.Owner = models.NewUserRef(owner.Int64)
	}
	if categoryID.Valid {
		id := categoryID.UUID
		prompt.CategoryID = &id
	}

	if err := json.Unmarshal(tags, &prompt.Tags); err != nil {
		return models.Prompt{}, fmt.Errorf("%w: tags: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal(variables, &prompt.Variables); err != nil {
		return models.Prompt{}, fmt.Errorf("%w: variables: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal(voters, &prompt.Voters); err != nil {
		return models.Prompt{}, fmt.Errorf("%w: voters: %w", ErrScanningRow, err)
	}
	if err := json.Unmarshal(comments, &prompt.Comments); err != nil {
		return models.Prompt{}, fmt.Errorf("%w: comments: %w", ErrScanningRow, err)
	}

	return prompt, nil
}

// promptArgs converts the document-shaped fields into their JSONB
// arguments and the optional references into their nullable forms.
func promptArgs(prompt models.Prompt) (tags, variables []byte, owner sql.NullInt64, categoryID uuid.NullUUID, err error) {
	if prompt.Tags == nil {
		prompt.Tags = []string{}
	}
	if prompt.Variables == nil {
		prompt.Variables = []models.Variable{}
	}

	tags, err = json.Marshal(prompt.Tags)
	if err != nil {
		return nil, nil, owner, categoryID, fmt.Errorf("%w: tags: %w", ErrBuildingSQLQuery, err)
	}

	variables, err = json.Marshal(prompt.Variables)
	if err != nil {
		return nil, nil, owner, categoryID, fmt.Errorf("%w: variables: %w", ErrBuildingSQLQuery, err)
	}

	if prompt.Owner.Valid {
		owner = sql.NullInt64{Int64: prompt.Owner.ID, Valid: true}
	}
	if prompt.CategoryID != nil {
		categoryID = uuid.NullUUID{UUID: *prompt.CategoryID, Valid: true}
	}

	return tags, variables, owner, categoryID, nil
}

// CreatePrompt persists a new prompt with a freshly generated identifier
// and returns the canonical database representation.
func (r *promptRepository) CreatePrompt(ctx context.Context, prompt models.Prompt) (models.Prompt, error) {
	log := logger.FromContext(ctx)

	tags, variables, owner, categoryID, err := promptArgs(prompt)
	if err != nil {
		log.Err(err).Str("func", "*promptRepository.CreatePrompt").Msg("failed to build insert arguments")
		return models.Prompt{}, err
	}

	prompt.ID = r.ids.Generate()
	row := r.db.QueryRowContext(ctx, createPrompt,
		prompt.ID, prompt.Title, prompt.Content, prompt.Description,
		tags, variables, owner, prompt.AuthorName, categoryID, prompt.IsPublic,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*promptRepository.CreatePrompt").Msg("error: creating prompt failed")
		return models.Prompt{}, r.db.wrapUnexpected(err)
	}

	created, err := scanPrompt(row)
	if err != nil {
		log.Err(err).Str("func", "*promptRepository.CreatePrompt").Msg("error: scanning error")
		return models.Prompt{}, err
	}

	return created, nil
}

// GetPromptByID retrieves a single prompt or [ErrPromptNotFound].
func (r *promptRepository) GetPromptByID(ctx context.Context, id uuid.UUID) (models.Prompt, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getPromptByID, id)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*promptRepository.GetPromptByID").Msg("error: query failed")
		return models.Prompt{}, r.db.wrapUnexpected(err)
	}

	prompt, err := scanPrompt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Prompt{}, ErrPromptNotFound
		}
		log.Err(err).Str("func", "*promptRepository.GetPromptByID").Msg("error: scanning error")
		return models.Prompt{}, err
	}

	return prompt, nil
}

// ListPrompts returns one page of prompts matching the query along with
// the total number of matches across all pages. A page past the end of
// the result set yields an empty slice and the accurate total.
func (r *promptRepository) ListPrompts(ctx context.Context, query PromptQuery) ([]models.Prompt, int, error) {
	log := logger.FromContext(ctx)
	query = query.Normalized()

	selectSQL, selectArgs, err := query.SelectSQL()
	if err != nil {
		log.Err(err).Str("func", "*promptRepository.ListPrompts").Msg("failed to build listing query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, selectSQL, selectArgs...)
	if err != nil {
		log.Err(err).Str("func", "*promptRepository.ListPrompts").Msg("failed to execute listing query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapUnexpected(err))
	}
	defer rows.Close()

	prompts := make([]models.Prompt, 0, query.Limit)

	for rows.Next() {
		prompt, scanErr := scanPrompt(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*promptRepository.ListPrompts").Msg("failed to scan prompt row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		prompts = append(prompts, prompt)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*promptRepository.ListPrompts").Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	countSQL, countArgs, err := query.CountSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*promptRepository.ListPrompts").Msg("failed to count matching prompts")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.wrapUnexpected(err))
	}

	return prompts, total, nil
}

// UpdatePrompt replaces the mutable fields of an existing prompt in a
// single statement and returns the updated record. Ownership checks
// happen at the service layer before this is called.
func (r *promptRepository) UpdatePrompt(ctx context.Context, prompt models.Prompt) (models.Prompt, error) {
	log := logger.FromContext(ctx)

	tags, variables, _, categoryID, err := promptArgs(prompt)
	if err != nil {
		log.Err(err).Str("func", "*promptRepository.UpdatePrompt").Msg("failed to build update arguments")
		return models.Prompt{}, err
	}

	row := r.db.QueryRowContext(ctx, updatePrompt,
		prompt.ID, prompt.Title, prompt.Content, prompt.Description,
		tags, variables, categoryID, prompt.IsPublic,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*promptRepository.UpdatePrompt").Msg("error: updating prompt failed")
		return models.Prompt{}, r.db.wrapUnexpected(err)
	}

	updated, err := scanPrompt(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Prompt{}, ErrPromptNotFound
		}
		log.Err(err).Str("func", "*promptRepository.UpdatePrompt").Msg("error: scanning error")
		return models.Prompt{}, err
	}

	return updated, nil
}

// DeletePrompt removes a prompt. A missing row fails with
// [ErrPromptNotFound].
func (r *promptRepository) DeletePrompt(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePrompt, id)
	if err != nil {
		log.Err(err).Str("func", "*promptRepository.DeletePrompt").Msg("error: deleting prompt failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.db.wrapUnexpected(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPromptNotFound
	}

	return nil
}

// IncrementVotes adds one vote to a public prompt. The increment happens
// inside the UPDATE itself, never as a read-then-write, so concurrent
// votes on the same prompt cannot lose updates.
func (r *promptRepository) IncrementVotes(ctx context.Context, id uuid.UUID) (int, error) {
	log := logger.FromContext(ctx)

	var votes int
	err := r.db.QueryRowContext(ctx, incrementVotes, id).Scan(&votes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Absent or not public: indistinguishable on purpose.
			return 0, ErrPromptNotFound
		}
		log.Err(err).Str("func", "*promptRepository.IncrementVotes").Msg("error: vote increment failed")
		return 0, r.db.wrapUnexpected(err)
	}

	return votes, nil
}

// AppendComment appends one comment to a public prompt's comment list as
// a single JSONB concatenation, keeping concurrent appends lossless.
func (r *promptRepository) AppendComment(ctx context.Context, id uuid.UUID, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	encoded, err := json.Marshal([]models.Comment{comment})
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: comment: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, appendComment, id, encoded)
	if err != nil {
		log.Err(err).Str("func", "*promptRepository.AppendComment").Msg("error: comment append failed")
		return models.Comment{}, r.db.wrapUnexpected(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Comment{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Comment{}, ErrPromptNotFound
	}

	return comment, nil
}
