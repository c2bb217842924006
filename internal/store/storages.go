package store

import "github.com/promptkeep/prompt-keeper/internal/logger"

// Storages bundles every repository backed by the shared database handle.
type Storages struct {
	UserRepository     UserRepository
	CategoryRepository CategoryRepository
	PromptRepository   PromptRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		CategoryRepository: NewCategoryRepository(db, logger),
		PromptRepository:   NewPromptRepository(db, logger),
	}
}
