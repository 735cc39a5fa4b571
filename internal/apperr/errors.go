// Package apperr defines the closed error taxonomy of the recommendation
// core. Services never return error kinds outside this set; the transport
// layer maps them to response envelopes.
package apperr

import "errors"

var (
	// ErrInvalidSeed is returned for empty or oversized name input.
	ErrInvalidSeed = errors.New("name must be between 1 and 100 characters")

	// ErrOutOfRange is returned when a selection index falls outside the
	// session's current shortlist.
	ErrOutOfRange = errors.New("invalid selection")

	// ErrNoSelection is returned when a fortune is requested but the session
	// holds no shortlist or selection (including missing/expired sessions).
	ErrNoSelection = errors.New("no recommendation to select from")

	// ErrInsufficientCorpus means the static corpus cannot satisfy the
	// shortlist size or diversity constraints. This is a server-level fault,
	// not a per-user error.
	ErrInsufficientCorpus = errors.New("name corpus cannot satisfy shortlist constraints")
)

func IsRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidSeed) ||
		errors.Is(err, ErrOutOfRange) ||
		errors.Is(err, ErrNoSelection)
}
