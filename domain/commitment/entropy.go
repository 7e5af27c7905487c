package commitment

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Entropy is the randomness capability a round depends on.
type Entropy interface {
	// RandomBytes returns n unpredictable bytes.
	RandomBytes(n int) ([]byte, error)

	// UniformIndex returns an integer drawn uniformly from [0, n).
	UniformIndex(n int) (int, error)
}

// SystemEntropy draws every value from Reader, which defaults to the
// operating system CSPRNG.
type SystemEntropy struct {
	Reader io.Reader
}

// NewSystemEntropy returns an Entropy backed by crypto/rand.
func NewSystemEntropy() SystemEntropy {
	return SystemEntropy{Reader: rand.Reader}
}

func (e SystemEntropy) reader() io.Reader {
	if e.Reader == nil {
		return rand.Reader
	}
	return e.Reader
}

// RandomBytes reads exactly n bytes. A short read is reported as
// ErrEntropyUnavailable.
func (e SystemEntropy) RandomBytes(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: cannot read %d bytes", ErrEntropyUnavailable, n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(e.reader(), b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return b, nil
}

// UniformIndex draws an index in [0, n) by rejection sampling over a kyber
// random stream seeded from Reader. The stream panics when its reader fails;
// the panic is turned into ErrEntropyUnavailable.
func (e SystemEntropy) UniformIndex(n int) (idx int, err error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: empty range [0, %d)", ErrEntropyUnavailable, n)
	}
	if n == 1 {
		return 0, nil
	}
	defer func() {
		if r := recover(); r != nil {
			idx, err = 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, r)
		}
	}()

	stream := random.New(e.reader())
	mod := big.NewInt(int64(n))
	bitlen := uint(big.NewInt(int64(n - 1)).BitLen())
	v := new(big.Int)
	for {
		v.SetBytes(random.Bits(bitlen, false, stream))
		if v.Cmp(mod) < 0 {
			return int(v.Int64()), nil
		}
	}
}
