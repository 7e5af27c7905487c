package ledger

import "errors"

var (
	// ErrCommitmentMismatch is returned when a disclosed key and house move do
	// not reproduce the commitment shown before the choice.
	ErrCommitmentMismatch = errors.New("commitment mismatch")

	// ErrOutcomeMismatch is returned when a recorded outcome is not what the
	// rules give for the two moves.
	ErrOutcomeMismatch = errors.New("outcome mismatch")

	// ErrBrokenChain is returned when indexes or hashes do not link up.
	ErrBrokenChain = errors.New("broken chain")
)
