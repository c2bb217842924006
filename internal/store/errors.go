package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCategoryNameTaken is returned when creating or renaming a category
	// collides with the globally unique category name.
	ErrCategoryNameTaken = errors.New("category name already exists")

	// ErrCategoryNotFound is returned when a query targets a category that
	// does not exist in the database.
	ErrCategoryNotFound = errors.New("category was not found")

	// ErrPromptNotFound is returned when a query or mutation targets a
	// prompt that does not exist — or, for the public vote/comment
	// operations, one that exists but is not public.
	ErrPromptNotFound = errors.New("prompt was not found")

	// ErrStoreUnavailable is returned when the database is unreachable or a
	// transient driver failure was detected. The condition is retryable.
	ErrStoreUnavailable = errors.New("store is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
