package rps

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/mental-rps/domain/commitment"
)

type RoundState string

const (
	Idle      RoundState = "idle"
	Committed RoundState = "committed"
	Revealed  RoundState = "revealed"
	Concluded RoundState = "concluded"
)

// RoundResult is everything the opponent needs to check the house: both
// moves, the outcome and the disclosed key next to the commitment shown
// before the choice.
type RoundResult struct {
	HouseMove     string                `json:"house_move"`
	HouseIndex    int                   `json:"house_index"`
	OpponentMove  string                `json:"opponent_move"`
	OpponentIndex int                   `json:"opponent_index"`
	Outcome       Outcome               `json:"outcome"` // house side
	Key           string                `json:"key"`
	Commitment    commitment.Commitment `json:"commitment"`
}

// OpponentOutcome returns the outcome from the opponent's side.
func (r RoundResult) OpponentOutcome() Outcome {
	return r.Outcome.Invert()
}

// Verify recomputes the commitment from the disclosed key and house move.
func (r RoundResult) Verify() bool {
	ok, err := commitment.VerifyHex(r.Key, r.HouseMove, string(r.Commitment))
	return err == nil && ok
}

// Round runs one round of the fair-commitment protocol. A Round is used
// once; play again with Game.NewRound.
type Round struct {
	relation   *Relation
	entropy    commitment.Entropy
	keys       *commitment.KeyProvider
	calc       *commitment.Calculator
	state      RoundState
	key        commitment.SecretKey
	house      int
	opponent   int
	commitment commitment.Commitment
}

// NewRound returns an Idle round over relation. The calculator may be shared
// between rounds.
func NewRound(relation *Relation, entropy commitment.Entropy, calc *commitment.Calculator) *Round {
	return &Round{
		relation: relation,
		entropy:  entropy,
		keys:     commitment.NewKeyProvider(entropy),
		calc:     calc,
		state:    Idle,
		house:    -1,
		opponent: -1,
	}
}

func (r *Round) State() RoundState {
	return r.state
}

// Commitment returns the published commitment, empty before Start.
func (r *Round) Commitment() commitment.Commitment {
	return r.commitment
}

// Start moves the round from Idle to Committed. It draws a fresh key, picks
// the house move uniformly and independently of the key, and returns the
// commitment to show the opponent before asking for a choice.
func (r *Round) Start() (commitment.Commitment, error) {
	if r.state != Idle {
		return "", fmt.Errorf("%w: cannot start a round in state %s", ErrRoundState, r.state)
	}
	key, err := r.keys.Generate()
	if err != nil {
		return "", err
	}
	n := r.relation.moves.Len()
	house, err := r.entropy.UniformIndex(n)
	if err != nil {
		key.Destroy()
		if !errors.Is(err, commitment.ErrEntropyUnavailable) {
			err = fmt.Errorf("%w: %w", commitment.ErrEntropyUnavailable, err)
		}
		return "", fmt.Errorf("draw house move: %w", err)
	}
	if !r.relation.moves.Valid(house) {
		key.Destroy()
		return "", fmt.Errorf("draw house move: %w: index %d out of range [0,%d)", commitment.ErrEntropyUnavailable, house, n)
	}
	c, err := r.calc.Commit(key, r.relation.moves.Name(house))
	if err != nil {
		key.Destroy()
		return "", err
	}
	r.key = key
	r.house = house
	r.commitment = c
	r.state = Committed
	return c, nil
}

// Complete takes the opponent's move index, resolves the round and discloses
// the key. An out of range choice returns ErrInvalidChoice and leaves the
// round Committed.
func (r *Round) Complete(choice int) (RoundResult, error) {
	if r.state != Committed {
		return RoundResult{}, fmt.Errorf("%w: cannot accept a choice in state %s", ErrRoundState, r.state)
	}
	if !r.relation.moves.Valid(choice) {
		return RoundResult{}, fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidChoice, choice, r.relation.moves.Len())
	}
	r.opponent = choice
	r.state = Revealed
	return r.conclude()
}

// conclude moves the round from Revealed to Concluded.
func (r *Round) conclude() (RoundResult, error) {
	outcome, err := r.relation.Result(r.house, r.opponent)
	if err != nil {
		return RoundResult{}, err
	}
	moves := r.relation.moves
	result := RoundResult{
		HouseMove:     moves.Name(r.house),
		HouseIndex:    r.house,
		OpponentMove:  moves.Name(r.opponent),
		OpponentIndex: r.opponent,
		Outcome:       outcome,
		Key:           r.key.String(),
		Commitment:    r.commitment,
	}
	r.key.Destroy()
	r.key = nil
	r.state = Concluded
	return result, nil
}
