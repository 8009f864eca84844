package core

import "errors"

// Expected, recoverable outcomes. Services return these and callers match
// with errors.Is; none of them is fatal and none leaves partial state.
var (
	// ErrValidation marks bad free-text input (age). The cursor does not move.
	ErrValidation = errors.New("validation error")

	// ErrIneligible marks a request from a user who is banned, has an
	// incomplete profile, or is already in a session.
	ErrIneligible = errors.New("ineligible")

	// ErrNoPartner means the eligible candidate set was empty.
	ErrNoPartner = errors.New("no partner available")

	// ErrNotInSession means the user has no active session to act on.
	ErrNotInSession = errors.New("not in session")

	// ErrUnauthorized marks a non-admin invoking an admin command.
	ErrUnauthorized = errors.New("unauthorized")
)
