package commitment

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// KeySize is the length in bytes of every round key.
const KeySize = 32

// SecretKey is the per-round HMAC key. It is printed as lowercase hex.
type SecretKey []byte

// String returns the 64-character lowercase hex encoding of the key.
func (k SecretKey) String() string {
	return hex.EncodeToString(k)
}

// Destroy overwrites the key in place.
func (k SecretKey) Destroy() {
	clear(k)
}

// ParseSecretKey decodes a hex encoded key as shown at disclosure time.
func ParseSecretKey(s string) (SecretKey, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: key is not hex: %w", ErrInvalidCommitmentInput, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidCommitmentInput)
	}
	return SecretKey(b), nil
}

// KeyProvider generates round keys from an Entropy source.
type KeyProvider struct {
	entropy Entropy
}

func NewKeyProvider(entropy Entropy) *KeyProvider {
	return &KeyProvider{entropy: entropy}
}

// Generate returns a fresh KeySize-byte key. Any failure of the source is
// reported as ErrEntropyUnavailable; there is no fallback.
func (p *KeyProvider) Generate() (SecretKey, error) {
	b, err := p.entropy.RandomBytes(KeySize)
	if err != nil {
		if !errors.Is(err, ErrEntropyUnavailable) {
			err = fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
		}
		return nil, fmt.Errorf("generate key: %w", err)
	}
	if len(b) != KeySize {
		return nil, fmt.Errorf("generate key: %w: got %d bytes, want %d", ErrEntropyUnavailable, len(b), KeySize)
	}
	return SecretKey(b), nil
}
