package service

import (
	"github.com/promptkeep/prompt-keeper/internal/config"
	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/store"
	"github.com/promptkeep/prompt-keeper/internal/validators"
)

// Services bundles the application services consumed by the HTTP
// handlers.
type Services struct {
	AuthService
	CategoryService
	PromptService
}

// NewServices wires every service to its repositories.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	validator := validators.NewPromptValidator()

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg, logger),
		CategoryService: NewCategoryService(storages.CategoryRepository, validator, logger),
		PromptService:   NewPromptService(storages.PromptRepository, validator, logger),
	}
}
