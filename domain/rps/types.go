package rps

import (
	"fmt"
	"slices"
)

type Outcome string

const (
	Win  Outcome = "Win"
	Lose Outcome = "Lose"
	Draw Outcome = "Draw"
)

// Invert returns the outcome seen from the other side.
func (o Outcome) Invert() Outcome {
	switch o {
	case Win:
		return Lose
	case Lose:
		return Win
	}
	return o
}

// MoveSet is the ordered list of move names of a session.
type MoveSet struct {
	names []string
	index map[string]int
}

// NewMoveSet validates names and returns an immutable MoveSet. The list must
// have an odd length of at least three and no repeated or empty names.
// Names are compared case-sensitively.
func NewMoveSet(names []string) (MoveSet, error) {
	n := len(names)
	if n < 3 {
		return MoveSet{}, fmt.Errorf("%w: need at least 3 moves, got %d", ErrInvalidMoveSet, n)
	}
	if n%2 == 0 {
		return MoveSet{}, fmt.Errorf("%w: need an odd number of moves, got %d", ErrInvalidMoveSet, n)
	}
	index := make(map[string]int, n)
	for i, name := range names {
		if name == "" {
			return MoveSet{}, fmt.Errorf("%w: move %d has an empty name", ErrInvalidMoveSet, i+1)
		}
		if j, ok := index[name]; ok {
			return MoveSet{}, fmt.Errorf("%w: %q repeated at positions %d and %d", ErrInvalidMoveSet, name, j+1, i+1)
		}
		index[name] = i
	}
	return MoveSet{names: slices.Clone(names), index: index}, nil
}

func (m MoveSet) Len() int {
	return len(m.names)
}

// Name returns the name at index i. It panics if i is out of range.
func (m MoveSet) Name(i int) string {
	return m.names[i]
}

// Names returns a copy of the move names in cycle order.
func (m MoveSet) Names() []string {
	return slices.Clone(m.names)
}

// Index returns the position of name, or -1.
func (m MoveSet) Index(name string) int {
	if i, ok := m.index[name]; ok {
		return i
	}
	return -1
}

// Valid reports whether i is an index of the set.
func (m MoveSet) Valid(i int) bool {
	return i >= 0 && i < len(m.names)
}
