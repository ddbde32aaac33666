package core

import "errors"

// Error kinds surfaced by engine operations. Callers branch with errors.Is;
// the API layer maps each kind to a transport status code.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrInvalidState  = errors.New("operation not valid in current debate state")
	ErrRoundLimit    = errors.New("round limit reached")
	ErrAlreadyJudged = errors.New("debate already judged")
	ErrInvalidWinner = errors.New("winner is not a debate participant")
	ErrInvalidChoice = errors.New("vote choice is not a debate participant")
	ErrStorage       = errors.New("storage failure")
)
