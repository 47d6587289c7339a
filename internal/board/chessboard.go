package board

import (
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"
)

const boardSize = 8

var (
	_ Board    = (*ChessBoard)(nil)
	_ Promoter = (*ChessBoard)(nil)
)

var (
	toLibType = map[PieceType]nchess.PieceType{
		King:   nchess.King,
		Queen:  nchess.Queen,
		Rook:   nchess.Rook,
		Bishop: nchess.Bishop,
		Knight: nchess.Knight,
		Pawn:   nchess.Pawn,
	}
	fromLibType = map[nchess.PieceType]PieceType{
		nchess.King:   King,
		nchess.Queen:  Queen,
		nchess.Rook:   Rook,
		nchess.Bishop: Bishop,
		nchess.Knight: Knight,
		nchess.Pawn:   Pawn,
	}
)

// ChessBoard is a Board backed by github.com/corentings/chess/v2.
// It is not safe for concurrent use.
type ChessBoard struct {
	game     *nchess.Game
	promo    PieceType
	observer Observer
}

// BoardOption configures a ChessBoard.
type BoardOption func(*ChessBoard)

// WithPromotion sets the piece pawns promote to when they reach the last rank.
// Kings, pawns and unknown types are ignored.
func WithPromotion(t PieceType) BoardOption {
	return func(b *ChessBoard) {
		if IsPromotionPiece(t) {
			b.promo = t
		}
	}
}

// New returns a board in the standard starting position.
func New(opts ...BoardOption) *ChessBoard {
	b := &ChessBoard{game: nchess.NewGame(), promo: Queen}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Observe registers the single observer of this board, replacing any previous one.
func (b *ChessBoard) Observe(o Observer) { b.observer = o }

// Promotion returns the piece pawns promote to on this board.
func (b *ChessBoard) Promotion() PieceType { return b.promo }

// Plies returns the number of completed plies.
func (b *ChessBoard) Plies() int { return len(b.game.Moves()) }

// FEN returns the current position in Forsyth-Edwards notation.
func (b *ChessBoard) FEN() string { return b.game.FEN() }

// Squares returns all squares in index order: a1..h1, a2..h2, ..., a8..h8.
func (b *ChessBoard) Squares() []Square {
	lb := b.game.Position().Board()
	out := make([]Square, 0, boardSize*boardSize)
	for rank := nchess.Rank1; rank <= nchess.Rank8; rank++ {
		for file := nchess.FileA; file <= nchess.FileH; file++ {
			out = append(out, squareView(lb, nchess.NewSquare(file, rank)))
		}
	}
	return out
}

// Square looks up a square by file letter and rank number.
func (b *ChessBoard) Square(file string, rank int) (Square, error) {
	sq, err := libSquare(file, rank)
	if err != nil {
		return Square{}, err
	}
	return squareView(b.game.Position().Board(), sq), nil
}

// Move applies the legal ply from -> to and notifies the observer.
// Pawns reaching the last rank promote to the configured piece.
func (b *ChessBoard) Move(from, to Square) error {
	s1, err := libSquare(from.File, from.Rank)
	if err != nil {
		return &IllegalMoveError{From: from, To: to, Err: err}
	}
	s2, err := libSquare(to.File, to.Rank)
	if err != nil {
		return &IllegalMoveError{From: from, To: to, Err: err}
	}

	pos := b.game.Position()
	candidates := b.game.ValidMoves()
	idx := -1
	for i := range candidates {
		m := &candidates[i]
		if m.S1() != s1 || m.S2() != s2 {
			continue
		}
		if m.Promo() != nchess.NoPieceType && m.Promo() != toLibType[b.promo] {
			continue
		}
		idx = i
		break
	}
	if idx < 0 {
		return &IllegalMoveError{From: from, To: to}
	}
	mv := &candidates[idx]

	// capture and notation come from the position before the move
	lb := pos.Board()
	moving, _ := pieceView(lb.Piece(s1))
	var captured *Piece
	if p, ok := pieceView(lb.Piece(s2)); ok {
		captured = &p
	} else if mv.HasTag(nchess.EnPassant) {
		if p, ok := pieceView(lb.Piece(nchess.NewSquare(s2.File(), s1.Rank()))); ok {
			captured = &p
		}
	}
	san := nchess.AlgebraicNotation{}.Encode(pos, mv)
	promoted := mv.Promo() != nchess.NoPieceType

	if err := b.game.Move(mv, nil); err != nil {
		return &IllegalMoveError{From: from, To: to, Err: err}
	}

	if b.observer == nil {
		return nil
	}
	after := b.game.Position().Board()
	b.observer.OnMove(MoveEvent{
		From:     squareView(after, s1),
		To:       squareView(after, s2),
		Piece:    moving,
		Captured: captured,
		Notation: san,
	})
	if promoted {
		b.observer.OnPromote()
	}
	return nil
}

func libSquare(file string, rank int) (nchess.Square, error) {
	f := strings.ToLower(strings.TrimSpace(file))
	if len(f) != 1 || f[0] < 'a' || f[0] > 'h' || rank < 1 || rank > boardSize {
		return nchess.NoSquare, fmt.Errorf("%w: %s%d", ErrNoSquare, file, rank)
	}
	return nchess.NewSquare(nchess.File(f[0]-'a'), nchess.Rank(rank-1)), nil
}

func squareView(lb *nchess.Board, sq nchess.Square) Square {
	out := Square{
		File: string(rune('a' + int(sq.File()))),
		Rank: int(sq.Rank()) + 1,
	}
	if p, ok := pieceView(lb.Piece(sq)); ok {
		out.Piece = &p
	}
	return out
}

func pieceView(p nchess.Piece) (Piece, bool) {
	if p == nchess.NoPiece {
		return Piece{}, false
	}
	side := SideA
	if p.Color() == nchess.Black {
		side = SideB
	}
	return Piece{Side: side, Type: fromLibType[p.Type()]}, true
}
