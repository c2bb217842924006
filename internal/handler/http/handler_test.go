package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/promptkeep/prompt-keeper/internal/config"
	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/internal/service"
	"github.com/promptkeep/prompt-keeper/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn    func(ctx context.Context, email, password, name string) (models.User, error)
	loginFn       func(ctx context.Context, email, password string) (models.User, error)
	getUserFn     func(ctx context.Context, userID int64) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, password, name string) (models.User, error) {
	return m.registerFn(ctx, email, password, name)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserFn(ctx, userID)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockPromptService implements service.PromptService for unit tests.
type mockPromptService struct {
	createPromptFn          func(ctx context.Context, owner models.UserRef, input service.PromptInput) (models.Prompt, error)
	createAnonymousPromptFn func(ctx context.Context, input service.PromptInput) (models.Prompt, error)
	getPromptFn             func(ctx context.Context, id uuid.UUID, caller models.UserRef) (models.Prompt, error)
	getPublicPromptFn       func(ctx context.Context, id uuid.UUID) (models.Prompt, error)
	listPromptsFn           func(ctx context.Context, owner models.UserRef, opts service.ListOptions) (models.PromptPage, error)
	listPublicPromptsFn     func(ctx context.Context, opts service.ListOptions) (models.PromptPage, error)
	updatePromptFn          func(ctx context.Context, id uuid.UUID, caller models.UserRef, input service.PromptInput) (models.Prompt, error)
	deletePromptFn          func(ctx context.Context, id uuid.UUID, caller models.UserRef) error
	votePromptFn            func(ctx context.Context, id uuid.UUID) (int, error)
	commentPromptFn         func(ctx context.Context, id uuid.UUID, text, authorName string, caller models.UserRef) (models.Comment, error)
}

func (m *mockPromptService) CreatePrompt(ctx context.Context, owner models.UserRef, input service.PromptInput) (models.Prompt, error) {
	return m.createPromptFn(ctx, owner, input)
}

func (m *mockPromptService) CreateAnonymousPrompt(ctx context.Context, input service.PromptInput) (models.Prompt, error) {
	return m.createAnonymousPromptFn(ctx, input)
}

func (m *mockPromptService) GetPrompt(ctx context.Context, id uuid.UUID, caller models.UserRef) (models.Prompt, error) {
	return m.getPromptFn(ctx, id, caller)
}

func (m *mockPromptService) GetPublicPrompt(ctx context.Context, id uuid.UUID) (models.Prompt, error) {
	return m.getPublicPromptFn(ctx, id)
}

func (m *mockPromptService) ListPrompts(ctx context.Context, owner models.UserRef, opts service.ListOptions) (models.PromptPage, error) {
	return m.listPromptsFn(ctx, owner, opts)
}

func (m *mockPromptService) ListPublicPrompts(ctx context.Context, opts service.ListOptions) (models.PromptPage, error) {
	return m.listPublicPromptsFn(ctx, opts)
}

func (m *mockPromptService) UpdatePrompt(ctx context.Context, id uuid.UUID, caller models.UserRef, input service.PromptInput) (models.Prompt, error) {
	return m.updatePromptFn(ctx, id, caller, input)
}

func (m *mockPromptService) DeletePrompt(ctx context.Context, id uuid.UUID, caller models.UserRef) error {
	return m.deletePromptFn(ctx, id, caller)
}

func (m *mockPromptService) VotePrompt(ctx context.Context, id uuid.UUID) (int, error) {
	return m.votePromptFn(ctx, id)
}

func (m *mockPromptService) CommentPrompt(ctx context.Context, id uuid.UUID, text, authorName string, caller models.UserRef) (models.Comment, error) {
	return m.commentPromptFn(ctx, id, text, authorName, caller)
}

// mockCategoryService implements service.CategoryService for unit tests.
type mockCategoryService struct {
	createCategoryFn   func(ctx context.Context, category models.Category) (models.Category, error)
	getAllCategoriesFn func(ctx context.Context) ([]models.Category, error)
	getCategoryByIDFn  func(ctx context.Context, id uuid.UUID) (models.Category, error)
	updateCategoryFn   func(ctx context.Context, category models.Category) (models.Category, error)
	deleteCategoryFn   func(ctx context.Context, id uuid.UUID) error
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return m.createCategoryFn(ctx, category)
}

func (m *mockCategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return m.getAllCategoriesFn(ctx)
}

func (m *mockCategoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error) {
	return m.getCategoryByIDFn(ctx, id)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	return m.updateCategoryFn(ctx, category)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.deleteCategoryFn(ctx, id)
}

// nopPinger satisfies Pinger for tests that do not touch the database.
type nopPinger struct{ err error }

func (p nopPinger) PingContext(context.Context) error { return p.err }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig() *config.StructuredConfig {
	cfg := &config.StructuredConfig{}
	cfg.App.Environment = "test"
	cfg.Server.AuthRateLimit = config.RateLimit{Window: config.DefaultRateLimitWindow, Max: 1000}
	cfg.Server.PublicRateLimit = config.RateLimit{Window: config.DefaultRateLimitWindow, Max: 1000}
	return cfg
}

// newTestHandler builds a Handler with the given service mocks. Nil
// mocks are fine for routes the test never exercises.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	return NewHandler(svcs, testConfig(), nopPinger{}, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
