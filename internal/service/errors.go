package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for an unknown email and
	// for a wrong password alike, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrNotPromptOwner is returned by write operations when the caller
	// does not own the prompt. Anonymous prompts have no owner and are
	// never writable through the owner-gated operations.
	ErrNotPromptOwner = errors.New("caller does not own this prompt")

	// ErrPromptAccessDenied is returned when an authenticated caller
	// reads a private prompt they do not own. The caller is known, so
	// revealing that the prompt exists is acceptable.
	ErrPromptAccessDenied = errors.New("caller may not access this prompt")

	// ErrPromptNotVisible is returned when an unauthenticated caller
	// reads a private prompt. It is reported exactly like an absent
	// prompt so that private resources are not confirmed to exist.
	ErrPromptNotVisible = errors.New("prompt is not visible")
)
