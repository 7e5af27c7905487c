// Package rps implements generalized rock-paper-scissors for any odd number
// of moves together with the house's fair round protocol.
//
// # Core Types
//
// MoveSet: The ordered, distinct move names of a session. The order defines
// the cycle.
//
// Relation: The complete win/lose/draw table of a MoveSet, built once and
// shared read-only by every round.
//
// Round: A single round of the fair-commitment protocol, driven as an explicit
// state machine.
//
// Game: The session. It owns the Relation and hands out fresh Rounds.
//
// # Rules
//
// With N moves and h = (N-1)/2, the move at index i beats the h moves that
// follow it in the cycle and loses to the h moves that precede it:
//
//	i beats j  ⇔  (j - i) mod N ∈ [1, h]
//
// Every move therefore beats exactly h moves and loses to exactly h moves.
// Listing "Rock Scissors Paper" gives the classic game.
//
// # Round Flow
//
// A round progresses through states: Idle → Committed → Revealed → Concluded.
// Start draws a key and the house move and returns the commitment; Complete
// takes the opponent's choice and returns the RoundResult with the disclosed
// key. An out of range choice leaves the round Committed so the caller may ask
// again under the same commitment.
package rps
