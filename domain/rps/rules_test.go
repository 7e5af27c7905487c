package rps

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

func names(n int) []string {
	ns := make([]string, n)
	for i := range ns {
		ns[i] = fmt.Sprintf("m%d", i)
	}
	return ns
}

func TestNewMoveSetRejects(t *testing.T) {
	cases := []struct {
		name  string
		moves []string
	}{
		{"empty", nil},
		{"one", []string{"Rock"}},
		{"two", []string{"Rock", "Paper"}},
		{"four", []string{"Rock", "Paper", "Scissors", "Lizard"}},
		{"duplicate", []string{"Rock", "Paper", "Rock"}},
		{"empty name", []string{"Rock", "", "Paper"}},
	}
	for _, tc := range cases {
		_, err := NewMoveSet(tc.moves)
		if !errors.Is(err, ErrInvalidMoveSet) {
			t.Errorf("%s: expected ErrInvalidMoveSet, got %v", tc.name, err)
		}
	}
}

func TestBuildRejectsUnvalidatedMoveSet(t *testing.T) {
	r, err := Build(MoveSet{})
	if !errors.Is(err, ErrInvalidMoveSet) {
		t.Fatalf("expected ErrInvalidMoveSet, got %v", err)
	}
	if r != nil {
		t.Fatal("expected no relation")
	}

	m, err := NewMoveSet(names(5))
	if err != nil {
		t.Fatal(err)
	}
	if r, err = Build(m); err != nil || r.Moves().Len() != 5 {
		t.Fatalf("Build of a valid move set failed: %v", err)
	}
}

func TestNewMoveSetCaseSensitive(t *testing.T) {
	m, err := NewMoveSet([]string{"rock", "Rock", "ROCK"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Index("Rock") != 1 || m.Index("paper") != -1 {
		t.Fatalf("unexpected indexes: %d %d", m.Index("Rock"), m.Index("paper"))
	}
}

func TestMoveSetIsImmutable(t *testing.T) {
	in := []string{"Rock", "Scissors", "Paper"}
	m, err := NewMoveSet(in)
	if err != nil {
		t.Fatal(err)
	}
	in[0] = "Changed"
	out := m.Names()
	out[1] = "Changed"
	if m.Name(0) != "Rock" || m.Name(1) != "Scissors" {
		t.Fatalf("move set was mutated: %v", m.Names())
	}
}

// TestRelationBalanced checks every odd size up to 25: draws on the diagonal,
// exactly (N-1)/2 wins and losses per row, and antisymmetry.
func TestRelationBalanced(t *testing.T) {
	for n := 3; n <= 25; n += 2 {
		r, err := NewRelation(names(n))
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		half := (n - 1) / 2
		for i := range n {
			wins, losses := 0, 0
			for j := range n {
				got, err := r.Result(i, j)
				if err != nil {
					t.Fatal(err)
				}
				back, _ := r.Result(j, i)
				switch got {
				case Draw:
					if i != j {
						t.Fatalf("n=%d: (%d,%d) is a draw", n, i, j)
					}
				case Win:
					wins++
					if back != Lose {
						t.Fatalf("n=%d: (%d,%d)=Win but (%d,%d)=%s", n, i, j, j, i, back)
					}
				case Lose:
					losses++
					if back != Win {
						t.Fatalf("n=%d: (%d,%d)=Lose but (%d,%d)=%s", n, i, j, j, i, back)
					}
				}
			}
			if got, _ := r.Result(i, i); got != Draw {
				t.Fatalf("n=%d: (%d,%d) = %s, want Draw", n, i, i, got)
			}
			if wins != half || losses != half {
				t.Fatalf("n=%d move %d: %d wins %d losses, want %d each", n, i, wins, losses, half)
			}
		}
	}
}

func TestRelationFiveMoves(t *testing.T) {
	r, err := NewRelation([]string{"A", "B", "C", "D", "E"})
	if err != nil {
		t.Fatal(err)
	}
	if got := r.Beats(0); !slices.Equal(got, []string{"B", "C"}) {
		t.Errorf("A beats %v, want [B C]", got)
	}
	if got := r.LosesTo(0); !slices.Equal(got, []string{"D", "E"}) {
		t.Errorf("A loses to %v, want [D E]", got)
	}
	if got := r.Beats(4); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("E beats %v, want [A B]", got)
	}
}

func TestRelationThreeMovesCycle(t *testing.T) {
	r, err := NewRelation([]string{"Rock", "Paper", "Scissors"})
	if err != nil {
		t.Fatal(err)
	}
	// each move beats the one listed after it
	expected := [][]Outcome{
		{Draw, Win, Lose},
		{Lose, Draw, Win},
		{Win, Lose, Draw},
	}
	for i := range expected {
		for j := range expected[i] {
			got, _ := r.Result(i, j)
			if got != expected[i][j] {
				t.Errorf("Result(%d,%d) = %s, want %s", i, j, got, expected[i][j])
			}
		}
	}
}

func TestRelationClassicOrder(t *testing.T) {
	r, err := NewRelation([]string{"Rock", "Scissors", "Paper"})
	if err != nil {
		t.Fatal(err)
	}
	m := r.Moves()
	rock, scissors, paper := m.Index("Rock"), m.Index("Scissors"), m.Index("Paper")
	cases := []struct {
		a, b int
		want Outcome
	}{
		{rock, scissors, Win},
		{rock, paper, Lose},
		{rock, rock, Draw},
		{paper, rock, Win},
		{scissors, paper, Win},
	}
	for _, tc := range cases {
		got, err := r.Result(tc.a, tc.b)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("%s vs %s = %s, want %s", m.Name(tc.a), m.Name(tc.b), got, tc.want)
		}
	}
}

func TestResultOutOfRange(t *testing.T) {
	r, _ := NewRelation([]string{"Rock", "Scissors", "Paper"})
	for _, pair := range [][2]int{{-1, 0}, {0, 3}, {3, 3}} {
		if _, err := r.Result(pair[0], pair[1]); !errors.Is(err, ErrInvalidChoice) {
			t.Errorf("Result(%d,%d): expected ErrInvalidChoice, got %v", pair[0], pair[1], err)
		}
	}
}

func TestTable(t *testing.T) {
	r, _ := NewRelation([]string{"Rock", "Scissors", "Paper"})
	table := r.Table()
	expected := [][]string{
		{TableCorner, "Rock", "Scissors", "Paper"},
		{"Rock", "Draw", "Win", "Lose"},
		{"Scissors", "Lose", "Draw", "Win"},
		{"Paper", "Win", "Lose", "Draw"},
	}
	if len(table) != len(expected) {
		t.Fatalf("expected %d rows, got %d", len(expected), len(table))
	}
	for i := range expected {
		if !slices.Equal(table[i], expected[i]) {
			t.Errorf("row %d: expected %v, actual %v", i, expected[i], table[i])
		}
	}
}

func TestOutcomeInvert(t *testing.T) {
	if Win.Invert() != Lose || Lose.Invert() != Win || Draw.Invert() != Draw {
		t.Fatal("Invert does not mirror outcomes")
	}
}
