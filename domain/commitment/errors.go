package commitment

import "errors"

var (
	// ErrEntropyUnavailable is returned when the secure randomness source
	// fails. It is fatal to the round and never retried.
	ErrEntropyUnavailable = errors.New("entropy unavailable")

	// ErrInvalidCommitmentInput is returned for an empty key or a move name
	// that is not part of the session's move set.
	ErrInvalidCommitmentInput = errors.New("invalid commitment input")
)
