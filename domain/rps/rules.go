package rps

import "fmt"

// TableCorner is the top-left cell of Relation.Table.
const TableCorner = `v Player \ House >`

// Relation is the complete outcome table of a MoveSet. It is immutable once
// built and safe to share between rounds.
type Relation struct {
	moves   MoveSet
	results [][]Outcome
}

// NewRelation validates names and builds their Relation.
func NewRelation(names []string) (*Relation, error) {
	moves, err := NewMoveSet(names)
	if err != nil {
		return nil, err
	}
	return Build(moves)
}

// Build derives every pairwise outcome of moves in O(N²). A MoveSet not
// obtained from NewMoveSet is rejected with ErrInvalidMoveSet.
func Build(moves MoveSet) (*Relation, error) {
	n := moves.Len()
	if n < 3 || n%2 == 0 {
		return nil, fmt.Errorf("%w: need an odd number of moves, at least 3, got %d", ErrInvalidMoveSet, n)
	}
	results := make([][]Outcome, n)
	for i := range n {
		results[i] = make([]Outcome, n)
		for j := range n {
			results[i][j] = outcome(i, j, n)
		}
	}
	return &Relation{moves: moves, results: results}, nil
}

// outcome resolves a against b on a cycle of n moves.
func outcome(a, b, n int) Outcome {
	if a == b {
		return Draw
	}
	half := (n - 1) / 2
	if d := ((b-a)%n + n) % n; d >= 1 && d <= half {
		return Win
	}
	return Lose
}

func (r *Relation) Moves() MoveSet {
	return r.moves
}

// Result returns the outcome of move a against move b, from a's side.
func (r *Relation) Result(a, b int) (Outcome, error) {
	if !r.moves.Valid(a) {
		return "", fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidChoice, a, r.moves.Len())
	}
	if !r.moves.Valid(b) {
		return "", fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidChoice, b, r.moves.Len())
	}
	return r.results[a][b], nil
}

// Beats returns the names of the moves that move i defeats.
func (r *Relation) Beats(i int) []string {
	return r.filter(i, Win)
}

// LosesTo returns the names of the moves that defeat move i.
func (r *Relation) LosesTo(i int) []string {
	return r.filter(i, Lose)
}

func (r *Relation) filter(i int, o Outcome) []string {
	if !r.moves.Valid(i) {
		return nil
	}
	var names []string
	for j, res := range r.results[i] {
		if res == o {
			names = append(names, r.moves.Name(j))
		}
	}
	return names
}

// Table returns the relation as rows of text. The first row holds
// TableCorner and the house moves; each following row starts with a player
// move followed by the player's outcome against every house move.
func (r *Relation) Table() [][]string {
	n := r.moves.Len()
	table := make([][]string, 0, n+1)
	table = append(table, append([]string{TableCorner}, r.moves.Names()...))
	for i := range n {
		row := make([]string, 0, n+1)
		row = append(row, r.moves.Name(i))
		for j := range n {
			row = append(row, string(r.results[i][j]))
		}
		table = append(table, row)
	}
	return table
}
