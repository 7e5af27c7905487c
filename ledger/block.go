package ledger

import "github.com/luca-patrignani/mental-rps/domain/rps"

// Block is one entry of the transcript.
type Block struct {
	Index     int              `json:"index"`
	Timestamp int64            `json:"timestamp"`
	PrevHash  string           `json:"prev_hash"`
	Hash      string           `json:"hash"`
	Round     *rps.RoundResult `json:"round,omitempty"` // nil in genesis
	Metadata  Metadata         `json:"metadata"`
}

type Metadata struct {
	Moves []string          `json:"moves,omitempty"` // genesis only
	Extra map[string]string `json:"extra,omitempty"`
}

// Score counts outcomes from the opponent's side.
type Score struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
}
