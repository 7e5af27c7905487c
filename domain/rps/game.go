package rps

import "github.com/luca-patrignani/mental-rps/domain/commitment"

// Game is a session: one move set, one Relation, any number of rounds.
// Nothing but the immutable Relation and the stateless Calculator is shared
// between rounds.
type Game struct {
	relation *Relation
	entropy  commitment.Entropy
	calc     *commitment.Calculator
}

// NewGame validates names and prepares the session. Validation happens here,
// before any round can start.
func NewGame(names []string, entropy commitment.Entropy) (*Game, error) {
	relation, err := NewRelation(names)
	if err != nil {
		return nil, err
	}
	return &Game{
		relation: relation,
		entropy:  entropy,
		calc:     commitment.NewCalculator(names),
	}, nil
}

func (g *Game) Relation() *Relation {
	return g.relation
}

func (g *Game) Moves() MoveSet {
	return g.relation.moves
}

// NewRound returns a fresh Idle round with its own key to come.
func (g *Game) NewRound() *Round {
	return NewRound(g.relation, g.entropy, g.calc)
}
