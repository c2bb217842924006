package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/promptkeep/prompt-keeper/models"
)

// Listing defaults applied by [PromptQuery.Normalized].
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PromptQuery describes one page of a filtered prompt listing. It is the
// query-builder boundary between the ownership/visibility layer and the
// database engine: callers express scope and filters here, and only this
// type knows how they translate to SQL.
type PromptQuery struct {
	// Owner restricts the listing to prompts owned by the given
	// identity. Mutually exclusive with PublicOnly in practice.
	Owner models.UserRef

	// PublicOnly restricts the listing to public prompts and switches
	// the ordering to votes-first.
	PublicOnly bool

	// CategoryID optionally filters by exact category match.
	CategoryID *uuid.UUID

	// Search optionally filters by case-insensitive substring match
	// against title, content, or any tag.
	Search string

	Page  int
	Limit int
}

// Normalized returns a copy of the query with page and limit forced into
// their valid ranges.
func (q PromptQuery) Normalized() PromptQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	return q
}

// Offset returns the number of rows skipped before the requested page.
func (q PromptQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// SelectSQL builds the paged SELECT for the listing.
//
// Ordering: owner-scoped listings are most-recently-updated first;
// public listings are most-voted first with recency as the tie-breaker.
func (q PromptQuery) SelectSQL() (string, []any, error) {
	builder := sq.Select(
		"id", "title", "content", "description", "tags", "variables",
		"user_id", "author_name", "category_id", "is_public",
		"votes", "voters", "comments", "created_at", "updated_at",
	).
		From("prompts").
		Where(q.filters()).
		Limit(uint64(q.Limit)).
		Offset(uint64(q.Offset())).
		PlaceholderFormat(sq.Dollar)

	if q.PublicOnly {
		builder = builder.OrderBy("votes DESC", "updated_at DESC")
	} else {
		builder = builder.OrderBy("updated_at DESC")
	}

	return builder.ToSql()
}

// CountSQL builds the total-matches COUNT for the same filters.
func (q PromptQuery) CountSQL() (string, []any, error) {
	return sq.Select("COUNT(*)").
		From("prompts").
		Where(q.filters()).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

func (q PromptQuery) filters() sq.And {
	conditions := sq.And{}

	if q.Owner.Valid {
		conditions = append(conditions, sq.Eq{"user_id": q.Owner.ID})
	}

	if q.PublicOnly {
		conditions = append(conditions, sq.Eq{"is_public": true})
	}

	if q.CategoryID != nil {
		conditions = append(conditions, sq.Eq{"category_id": *q.CategoryID})
	}

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		conditions = append(conditions, sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"content": pattern},
			sq.Expr("EXISTS (SELECT 1 FROM jsonb_array_elements_text(tags) AS tag WHERE tag ILIKE ?)", pattern),
		})
	}

	return conditions
}
