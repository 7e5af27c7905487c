// Package ledger keeps an in-memory, hash-chained transcript of the rounds
// played in one session.
//
// # Core Components
//
// Ledger: An append-only log of concluded rounds with hash chaining for
// tamper detection. It lives as long as the session and is never persisted.
//
// Block: A single concluded round, linked to the previous block by hash. The
// genesis block records the move set of the session.
//
// # Security Properties
//
// The ledger provides:
//   - Verifiability: every block's disclosure is re-checked against its
//     commitment, both when it is appended and by Verify
//   - Tamper detection: any modification breaks the hash chain
//   - Auditability: the transcript can be printed as JSON at the end of the
//     session and checked round by round with any HMAC-SHA256 tool
package ledger
