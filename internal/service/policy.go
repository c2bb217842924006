package service

import "github.com/promptkeep/prompt-keeper/models"

// Ownership and visibility policy. These are pure decision functions:
// given a prompt and an optional caller identity they decide whether
// the requested kind of access is allowed, with no side effects and no
// knowledge of transport or storage.
//
// The ownership comparison goes through [models.UserRef.Equal], which is
// defined only for two present identities. A prompt with no owner
// therefore never matches any caller — in particular, an unauthenticated
// caller does not own an anonymous prompt.

// CanReadPrompt decides read access: public prompts are readable by
// anyone, private ones only by their owner.
//
// The two failure modes differ deliberately: an authenticated caller is
// told access is denied, while an unauthenticated caller learns nothing
// beyond "not visible" (reported like a missing prompt).
func CanReadPrompt(prompt models.Prompt, caller models.UserRef) error {
	if prompt.IsPublic {
		return nil
	}
	if caller.Equal(prompt.Owner) {
		return nil
	}
	if caller.Valid {
		return ErrPromptAccessDenied
	}
	return ErrPromptNotVisible
}

// CanWritePrompt decides update/delete access: only the present owner
// identity matching the caller is allowed. Anonymous prompts (absent
// owner) are never writable through the owner-gated operations.
func CanWritePrompt(prompt models.Prompt, caller models.UserRef) error {
	if caller.Equal(prompt.Owner) {
		return nil
	}
	return ErrNotPromptOwner
}

// CanEngagePrompt decides whether the unauthenticated engagement
// operations (vote, comment) apply: they are allowed on any public
// prompt and on nothing else.
func CanEngagePrompt(prompt models.Prompt) error {
	if prompt.IsPublic {
		return nil
	}
	return ErrPromptNotVisible
}
