package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/promptkeep/prompt-keeper/internal/logger"
	"github.com/promptkeep/prompt-keeper/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Transient driver failures → [ErrStoreUnavailable].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.PasswordHash, user.Name)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: creating user failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, r.db.wrapUnexpected(err)
		}
	}

	if err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.Name, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the account whose email matches the given
// (already lowercased) value.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoUserWasFound].
//   - Transient driver failures → [ErrStoreUnavailable].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: query failed")
		return models.User{}, r.db.wrapUnexpected(err)
	}

	if err := row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Name, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}

// FindUserByID retrieves the account with the given internal identifier.
// The lookup backs both token resolution (stale identities surface as
// [ErrNoUserWasFound]) and the current-user endpoint.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: query failed")
		return models.User{}, r.db.wrapUnexpected(err)
	}

	if err := row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Name, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}
