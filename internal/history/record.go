// Package history holds the per-ply move records of a game and the ordered log they live in.
package history

import (
	"strconv"

	"github.com/park285/chess-movelog/internal/board"
)

// MoveRecord is the snapshot of one ply. Hash is the position fingerprint
// taken right after the move; Promotion is the only field amended later.
type MoveRecord struct {
	Piece     board.Piece  `json:"piece" yaml:"piece"`
	PrevFile  string       `json:"prev_file" yaml:"prev_file"`
	PrevRank  int          `json:"prev_rank" yaml:"prev_rank"`
	PostFile  string       `json:"post_file" yaml:"post_file"`
	PostRank  int          `json:"post_rank" yaml:"post_rank"`
	Captured  *board.Piece `json:"captured,omitempty" yaml:"captured,omitempty"`
	Promotion bool         `json:"promotion" yaml:"promotion"`
	Notation  string       `json:"notation,omitempty" yaml:"notation,omitempty"`
	Hash      string       `json:"hash" yaml:"hash"`
}

// NewMoveRecord builds a record from a board move notification and the
// hash of the resulting position.
func NewMoveRecord(ev board.MoveEvent, hash string) MoveRecord {
	rec := MoveRecord{
		Piece:    ev.Piece,
		PrevFile: ev.From.File,
		PrevRank: ev.From.Rank,
		PostFile: ev.To.File,
		PostRank: ev.To.Rank,
		Notation: ev.Notation,
		Hash:     hash,
	}
	if ev.Captured != nil {
		c := *ev.Captured
		rec.Captured = &c
	}
	return rec
}

// UCI renders the coordinates as a long-algebraic string such as "e2e4".
func (r MoveRecord) UCI() string {
	return r.PrevFile + strconv.Itoa(r.PrevRank) + r.PostFile + strconv.Itoa(r.PostRank)
}

// SideToMove derives whose turn it is from the number of recorded plies.
func SideToMove(plies int) board.Side {
	if plies%2 == 0 {
		return board.SideA
	}
	return board.SideB
}
