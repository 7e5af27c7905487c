package rps

import "errors"

var (
	// ErrInvalidMoveSet is returned when the move list is even, shorter than
	// three or contains a repeated name. It is fatal to the session.
	ErrInvalidMoveSet = errors.New("invalid move set")

	// ErrInvalidChoice is returned for a move index outside [0, N). A round
	// rejecting a choice stays Committed.
	ErrInvalidChoice = errors.New("invalid choice")

	// ErrRoundState is returned when a round operation is called in the
	// wrong state.
	ErrRoundState = errors.New("invalid round state")
)
