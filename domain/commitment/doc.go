// Package commitment implements the house side of the fair-commitment
// protocol: a fresh secret key for every round and a keyed HMAC-SHA256 tag
// binding the house to its move before the opponent chooses.
//
// # Core Types
//
// Entropy: The injected randomness capability. SystemEntropy reads from the
// operating system CSPRNG; tests substitute a deterministic source.
//
// KeyProvider: Produces a 32-byte SecretKey per round.
//
// Calculator: Computes and verifies commitments for the moves of a session.
//
// # Protocol
//
// The house draws a key and a move, publishes Commit(key, move), waits for the
// opponent, then discloses key and move. Anyone holding the disclosure can
// recompute the tag and compare it with the one shown before the choice:
//
//	commitment = hex(HMAC-SHA256(key, utf8(move)))
//
// # Security Properties
//
//   - Hiding: without the key the tag reveals nothing about the move
//   - Binding: no other move produces the same tag under the same key
//   - Freshness: keys are never reused; a reused key together with an
//     earlier disclosure would let the opponent test every candidate move
package commitment
