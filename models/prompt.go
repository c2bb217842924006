package models

import (
	"time"

	"github.com/google/uuid"
)

// VariableType enumerates the supported prompt variable kinds.
type VariableType string

const (
	VariableText   VariableType = "text"
	VariableNumber VariableType = "number"
	VariableSelect VariableType = "select"
)

// AnonymousAuthor is the display label used when content is created
// without an owning identity.
const AnonymousAuthor = "Anónimo"

// Variable is a named placeholder inside a prompt's template content.
type Variable struct {
	Name         string       `json:"name"`
	Description  string       `json:"description,omitempty"`
	DefaultValue any          `json:"defaultValue,omitempty"`
	Type         VariableType `json:"type"`

	// Options lists the allowed values for variables of type "select".
	Options []string `json:"options,omitempty"`
}

// Comment is an append-only annotation on a public prompt. Commenting
// is unauthenticated; Owner is populated only when a logged-in user
// chooses to comment under their identity.
type Comment struct {
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Owner      UserRef   `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Prompt is a reusable text template, the primary shared content type.
//
// Invariant: a prompt with an absent Owner is anonymous and must have
// IsPublic = true. The public create path enforces this, and the
// database schema carries a matching CHECK constraint.
type Prompt struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags"`
	Variables   []Variable `json:"variables"`

	// Owner is the identity the prompt belongs to; absent for
	// anonymous prompts.
	Owner UserRef `json:"userId"`

	// AuthorName is the display label shown next to the prompt.
	// Defaults to [AnonymousAuthor] when Owner is absent.
	AuthorName string `json:"authorName"`

	CategoryID *uuid.UUID `json:"categoryId"`
	IsPublic   bool       `json:"isPublic"`

	// Votes only ever increases; the increment is a single atomic
	// operation at the store.
	Votes int `json:"votes"`

	// Voters optionally tracks identities that voted. The vote
	// operation itself is unauthenticated and does not populate it.
	Voters []int64 `json:"voters,omitempty"`

	Comments []Comment `json:"comments"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Prompt model.
func (p Prompt) TableName() string {
	return "prompts"
}
