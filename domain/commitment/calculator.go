package commitment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Commitment is the hex encoded HMAC-SHA256 tag of a move.
type Commitment string

// Calculator commits to the moves of one session. It holds no per-round
// state and can be shared by every round.
type Calculator struct {
	moves map[string]struct{}
}

// NewCalculator returns a Calculator that only accepts the given move names.
// With no names every non-empty move name is accepted.
func NewCalculator(moves []string) *Calculator {
	allowed := make(map[string]struct{}, len(moves))
	for _, m := range moves {
		allowed[m] = struct{}{}
	}
	return &Calculator{moves: allowed}
}

// Commit computes hex(HMAC-SHA256(key, move)).
func (c *Calculator) Commit(key SecretKey, move string) (Commitment, error) {
	if err := c.check(key, move); err != nil {
		return "", err
	}
	return Commitment(hex.EncodeToString(sum(key, move))), nil
}

// Verify reports whether commitment was produced by Commit(key, move).
// Malformed input never verifies.
func (c *Calculator) Verify(key SecretKey, move string, commitment Commitment) bool {
	if err := c.check(key, move); err != nil {
		return false
	}
	return verify(key, move, string(commitment))
}

func (c *Calculator) check(key SecretKey, move string) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidCommitmentInput)
	}
	if move == "" {
		return fmt.Errorf("%w: empty move name", ErrInvalidCommitmentInput)
	}
	if len(c.moves) == 0 {
		return nil
	}
	if _, ok := c.moves[move]; !ok {
		return fmt.Errorf("%w: move %q is not in the move set", ErrInvalidCommitmentInput, move)
	}
	return nil
}

// VerifyHex checks a disclosure in the form it is printed: hex key, move name
// and hex commitment. It does not know the session's move set.
func VerifyHex(keyHex, move, commitmentHex string) (bool, error) {
	key, err := ParseSecretKey(keyHex)
	if err != nil {
		return false, err
	}
	if move == "" {
		return false, fmt.Errorf("%w: empty move name", ErrInvalidCommitmentInput)
	}
	if _, err := hex.DecodeString(commitmentHex); err != nil {
		return false, fmt.Errorf("%w: commitment is not hex: %w", ErrInvalidCommitmentInput, err)
	}
	return verify(key, move, commitmentHex), nil
}

func sum(key SecretKey, move string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(move))
	return mac.Sum(nil)
}

func verify(key SecretKey, move, commitmentHex string) bool {
	want, err := hex.DecodeString(commitmentHex)
	if err != nil {
		return false
	}
	return hmac.Equal(sum(key, move), want)
}
