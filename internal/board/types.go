package board

import (
	"errors"
	"fmt"
)

// Side identifies one of the two players. SideA moves first.
type Side uint8

const (
	SideA Side = iota
	SideB
)

// Marker is the single-character side marker used in position hashes.
func (s Side) Marker() string {
	if s == SideB {
		return "b"
	}
	return "w"
}

func (s Side) String() string {
	if s == SideB {
		return "black"
	}
	return "white"
}

// PieceType enumerates chess piece kinds.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

var pieceSymbols = map[PieceType]string{
	King:   "K",
	Queen:  "Q",
	Rook:   "R",
	Bishop: "B",
	Knight: "N",
	Pawn:   "P",
}

// Symbol returns the notation letter of the piece type.
func (t PieceType) Symbol() string { return pieceSymbols[t] }

func (t PieceType) String() string { return t.Symbol() }

// ParsePieceType accepts a notation letter in either case.
func ParsePieceType(s string) (PieceType, error) {
	switch s {
	case "k", "K":
		return King, nil
	case "q", "Q":
		return Queen, nil
	case "r", "R":
		return Rook, nil
	case "b", "B":
		return Bishop, nil
	case "n", "N":
		return Knight, nil
	case "p", "P":
		return Pawn, nil
	}
	return NoPieceType, fmt.Errorf("unknown piece type %q", s)
}

// Piece is a typed piece owned by a side.
type Piece struct {
	Side Side      `json:"side" yaml:"side"`
	Type PieceType `json:"type" yaml:"type"`
}

// Symbol returns the notation letter of the piece.
func (p Piece) Symbol() string { return p.Type.Symbol() }

// Square is a read-only view of one board square.
type Square struct {
	File  string
	Rank  int
	Piece *Piece
}

func (s Square) String() string { return fmt.Sprintf("%s%d", s.File, s.Rank) }

// Occupied reports whether a piece stands on the square.
func (s Square) Occupied() bool { return s.Piece != nil }

// MoveEvent is delivered to the observer after a ply has been applied.
// From no longer holds the moved piece; To holds it.
type MoveEvent struct {
	From     Square
	To       Square
	Piece    Piece
	Captured *Piece
	Notation string
}

// Observer receives board notifications synchronously on the mover's goroutine.
type Observer interface {
	OnMove(ev MoveEvent)
	OnPromote()
}

// View is the read-only part of a Board.
type View interface {
	Squares() []Square
	Square(file string, rank int) (Square, error)
	Plies() int
}

// Board is the collaborator that owns position and legality.
type Board interface {
	View
	Move(from, to Square) error
	Observe(o Observer)
}

// Promoter is implemented by boards that report the piece pawns promote to.
type Promoter interface {
	Promotion() PieceType
}

// IsPromotionPiece reports whether pawns may promote to t.
func IsPromotionPiece(t PieceType) bool {
	switch t {
	case Queen, Rook, Bishop, Knight:
		return true
	}
	return false
}

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrNoSquare    = errors.New("no such square")
)

// IllegalMoveError reports a rejected ply.
type IllegalMoveError struct {
	From Square
	To   Square
	Err  error
}

func (e *IllegalMoveError) Error() string {
	if e.Err != nil && !errors.Is(e.Err, ErrIllegalMove) {
		return fmt.Sprintf("illegal move %s%s: %v", e.From, e.To, e.Err)
	}
	return fmt.Sprintf("illegal move %s%s", e.From, e.To)
}

func (e *IllegalMoveError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrIllegalMove}
	}
	return []error{ErrIllegalMove, e.Err}
}

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Side) UnmarshalText(b []byte) error {
	switch string(b) {
	case "white", "w":
		*s = SideA
	case "black", "b":
		*s = SideB
	default:
		return fmt.Errorf("unknown side %q", string(b))
	}
	return nil
}

func (t PieceType) MarshalText() ([]byte, error) { return []byte(t.Symbol()), nil }

func (t *PieceType) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*t = NoPieceType
		return nil
	}
	pt, err := ParsePieceType(string(b))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}
