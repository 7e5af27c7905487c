package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/luca-patrignani/mental-rps/domain/rps"
)

const genesisPrevHash = "0"

// Ledger is the transcript of a session.
type Ledger struct {
	mu     sync.RWMutex
	blocks   []Block
	moves    rps.MoveSet
	relation *rps.Relation
}

// NewLedger creates a ledger whose genesis block records the move set of
// relation. Recorded outcomes are checked against relation.
func NewLedger(relation *rps.Relation) *Ledger {
	moves := relation.Moves()
	l := &Ledger{
		blocks:   make([]Block, 0),
		moves:    moves,
		relation: relation,
	}
	genesis := Block{
		Index:     0,
		Timestamp: time.Now().Unix(),
		PrevHash:  genesisPrevHash,
		Metadata:  Metadata{Moves: moves.Names()},
	}
	genesis.Hash = calculateHash(genesis)
	l.blocks = append(l.blocks, genesis)
	return l
}

// Append records a concluded round. The disclosure must reproduce the
// commitment, both moves must belong to the session and the outcome must be
// the one the rules give; otherwise nothing is recorded. The extra parameter can optionally carry additional metadata.
func (l *Ledger) Append(res rps.RoundResult, extra ...map[string]string) error {
	if err := l.checkRound(res); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var extraMsg map[string]string
	if len(extra) > 0 {
		extraMsg = extra[0]
	}
	latest := l.blocks[len(l.blocks)-1]
	round := res
	block := Block{
		Index:     latest.Index + 1,
		Timestamp: time.Now().Unix(),
		PrevHash:  latest.Hash,
		Round:     &round,
		Metadata:  Metadata{Extra: extraMsg},
	}
	block.Hash = calculateHash(block)

	if err := validateBlock(block, latest); err != nil {
		return fmt.Errorf("invalid block: %w", err)
	}
	l.blocks = append(l.blocks, block)
	return nil
}

func (l *Ledger) checkRound(res rps.RoundResult) error {
	if l.moves.Index(res.HouseMove) != res.HouseIndex || l.moves.Index(res.OpponentMove) != res.OpponentIndex {
		return fmt.Errorf("%w: moves %q/%q do not match the session", rps.ErrInvalidChoice, res.HouseMove, res.OpponentMove)
	}
	if !res.Verify() {
		return fmt.Errorf("%w: key %s does not commit to %q", ErrCommitmentMismatch, res.Key, res.HouseMove)
	}
	want, err := l.relation.Result(res.HouseIndex, res.OpponentIndex)
	if err != nil {
		return err
	}
	if res.Outcome != want {
		return fmt.Errorf("%w: %s against %s is %s, recorded %s", ErrOutcomeMismatch, res.HouseMove, res.OpponentMove, want, res.Outcome)
	}
	return nil
}

// Latest returns the most recently added block.
func (l *Ledger) Latest() Block {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.blocks[len(l.blocks)-1]
}

// Get returns the block at index.
func (l *Ledger) Get(index int) (Block, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if index < 0 || index >= len(l.blocks) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return l.blocks[index], nil
}

// Rounds returns the number of recorded rounds, genesis excluded.
func (l *Ledger) Rounds() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.blocks) - 1
}

// Score tallies the recorded rounds from the opponent's side.
func (l *Ledger) Score() Score {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var s Score
	for _, b := range l.blocks[1:] {
		if b.Round == nil {
			continue
		}
		switch b.Round.OpponentOutcome() {
		case rps.Win:
			s.Wins++
		case rps.Lose:
			s.Losses++
		case rps.Draw:
			s.Draws++
		}
	}
	return s
}

// Verify checks the genesis block, every link of the chain and every
// disclosure. All problems found are returned joined.
func (l *Ledger) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if len(l.blocks) == 0 {
		return fmt.Errorf("%w: empty ledger", ErrBrokenChain)
	}
	var errs []error
	genesis := l.blocks[0]
	if genesis.PrevHash != genesisPrevHash || genesis.Round != nil || genesis.Hash != calculateHash(genesis) {
		errs = append(errs, fmt.Errorf("%w: invalid genesis block", ErrBrokenChain))
	}
	for i := 1; i < len(l.blocks); i++ {
		current, previous := l.blocks[i], l.blocks[i-1]
		if err := validateBlock(current, previous); err != nil {
			errs = append(errs, fmt.Errorf("block %d: %w", i, err))
			continue
		}
		if current.Round == nil {
			errs = append(errs, fmt.Errorf("block %d: %w: missing round", i, ErrBrokenChain))
			continue
		}
		if err := l.checkRound(*current.Round); err != nil {
			errs = append(errs, fmt.Errorf("block %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// MarshalJSON encodes the whole transcript.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return json.Marshal(struct {
		Blocks []Block `json:"blocks"`
	}{Blocks: slices.Clone(l.blocks)})
}

// validateBlock checks index continuity, the previous hash link and the
// block's own hash.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("%w: invalid index: expected %d, got %d", ErrBrokenChain, previous.Index+1, current.Index)
	}
	if current.PrevHash != previous.Hash {
		return fmt.Errorf("%w: invalid prev hash: expected %s, got %s", ErrBrokenChain, previous.Hash, current.PrevHash)
	}
	if expected := calculateHash(current); current.Hash != expected {
		return fmt.Errorf("%w: invalid hash: expected %s, got %s", ErrBrokenChain, expected, current.Hash)
	}
	return nil
}

// calculateHash computes the SHA256 of a block's index, timestamp, previous
// hash, round and metadata. Round and metadata are JSON marshaled first.
func calculateHash(block Block) string {
	roundBytes, _ := json.Marshal(block.Round)
	metaBytes, _ := json.Marshal(block.Metadata)

	data := fmt.Sprintf("%d%d%s%s%s",
		block.Index,
		block.Timestamp,
		block.PrevHash,
		string(roundBytes),
		string(metaBytes),
	)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
