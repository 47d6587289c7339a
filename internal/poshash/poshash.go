// Package poshash fingerprints board occupancy.
//
// The digest covers piece placement only: file, rank, side and piece type of
// every occupied square. Side to move, castling rights and en passant
// availability are not part of it, so two positions that differ only in
// those respects share a hash.
package poshash

import (
	"crypto/md5"
	"encoding/base64"
	"io"
	"strconv"

	"github.com/park285/chess-movelog/internal/board"
)

const delimiter = "-"

// Hash returns the base64 digest of the occupied squares, visited in the
// order given. Callers must pass squares in the board's fixed order.
func Hash(squares []board.Square) string {
	sum := md5.New()
	first := true
	for _, sq := range squares {
		if sq.Piece == nil {
			continue
		}
		if !first {
			io.WriteString(sum, delimiter)
		}
		first = false
		io.WriteString(sum, entry(sq))
	}
	return base64.StdEncoding.EncodeToString(sum.Sum(nil))
}

// Of hashes the current occupancy of b.
func Of(b board.View) string { return Hash(b.Squares()) }

func entry(sq board.Square) string {
	return sq.File + strconv.Itoa(sq.Rank) + sq.Piece.Side.Marker() + sq.Piece.Symbol()
}
