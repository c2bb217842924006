package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups prompts under a shared, globally unique name.
// Any authenticated caller may manage categories; there is no separate
// elevated role.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}
