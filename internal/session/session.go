// Package session records the move history of one game by listening to
// the notifications of the Board it owns.
//
// 보드 알림은 동기 처리: Board.Move가 반환되기 전에 기록 1건이 추가되고,
// 승격 알림은 방금 추가된 기록에만 표시한다. 차례는 기록 길이로 계산하며
// 저장하지 않는다. 동시 사용 불가.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/park285/chess-movelog/internal/board"
	"github.com/park285/chess-movelog/internal/history"
	"github.com/park285/chess-movelog/internal/poshash"
)

var (
	ErrUndoNotAvailable = errors.New("no moves available to undo")
	ErrHistoryDesync    = errors.New("history length differs from board ply count")
)

type Session struct {
	id       string
	board    board.Board
	log      *history.Log
	logger   *zap.Logger
	settings settings
}

// New는 새 대국 시작: 새 보드, 빈 기록, 백 차례.
func New(opts ...Option) *Session {
	return newSession(buildSettings(opts))
}

func newSession(st settings) *Session {
	var b board.Board
	if st.factory != nil {
		b = st.factory()
	}
	if b == nil {
		b = board.New(board.WithPromotion(st.promo))
	}
	id := st.id
	if id == "" {
		id = uuid.NewString()
	}
	s := &Session{
		id:       id,
		board:    b,
		log:      history.NewLog(),
		logger:   st.logger,
		settings: st,
	}
	b.Observe(recorder{s})
	return s
}

// 보드 옵저버. 세션당 하나.
type recorder struct{ s *Session }

func (r recorder) OnMove(ev board.MoveEvent) { r.s.recordMove(ev) }
func (r recorder) OnPromote()                { r.s.amendPromotion() }

func (s *Session) recordMove(ev board.MoveEvent) {
	rec := history.NewMoveRecord(ev, poshash.Of(s.board))
	s.log.Append(rec)
	s.logger.Debug("ply_recorded",
		zap.String("session_id", s.id),
		zap.Int("ply", s.log.Len()),
		zap.String("move", rec.UCI()),
		zap.String("san", rec.Notation),
		zap.String("hash", rec.Hash),
	)
}

func (s *Session) amendPromotion() {
	if !s.log.AmendLastPromotion() {
		return
	}
	s.logger.Debug("promotion_amended", zap.String("session_id", s.id), zap.Int("ply", s.log.Len()))
}

func (s *Session) ID() string { return s.id }

// Board는 소유한 보드의 읽기 전용 뷰. 수는 Session.Move로만 둔다.
func (s *Session) Board() board.View { return s.board }

// Promotion은 보드의 승격 기물. 보고하지 않는 보드면 NoPieceType.
func (s *Session) Promotion() board.PieceType {
	if p, ok := s.board.(board.Promoter); ok {
		return p.Promotion()
	}
	return board.NoPieceType
}

func (s *Session) Len() int { return s.log.Len() }

// History는 기록 사본을 반환.
func (s *Session) History() []history.MoveRecord { return s.log.Records() }

func (s *Session) Last() (history.MoveRecord, bool) { return s.log.Last() }

// 짝수 수 이후 백 차례.
func (s *Session) CurrentSide() board.Side { return s.log.SideToMove() }

// CurrentHash는 현재 배치의 해시.
func (s *Session) CurrentHash() string { return poshash.Of(s.board) }

// Repetitions는 마지막 배치가 기록에 나타난 횟수(자신 포함). 첫 수 전에는 0.
func (s *Session) Repetitions() int {
	last, ok := s.log.Last()
	if !ok {
		return 0
	}
	return s.log.Occurrences(last.Hash)
}

// Move는 좌표로 칸을 찾아 소유 보드에 수를 둔다.
func (s *Session) Move(fromFile string, fromRank int, toFile string, toRank int) error {
	return applyPly(s.board, fromFile, fromRank, toFile, toRank)
}

// Undo는 남길 앞부분을 새 보드에 재생해 마지막 n수를 되돌린다.
// ID는 유지, 실패 시 세션은 그대로.
func (s *Session) Undo(n int) error {
	if n < 1 || n > s.log.Len() {
		return ErrUndoNotAvailable
	}
	keep := s.log.Records()[:s.log.Len()-n]
	st := s.settings
	st.id = s.id
	next, err := load(st, keep)
	if err != nil {
		return fmt.Errorf("undo %d plies: %w", n, err)
	}
	s.board, s.log = next.board, next.log
	s.board.Observe(recorder{s})
	s.logger.Info("undo", zap.String("session_id", s.id), zap.Int("removed", n), zap.Int("plies", s.log.Len()))
	return nil
}

func applyPly(b board.Board, fromFile string, fromRank int, toFile string, toRank int) error {
	from, err := b.Square(fromFile, fromRank)
	if err != nil {
		return &board.IllegalMoveError{From: board.Square{File: fromFile, Rank: fromRank}, To: board.Square{File: toFile, Rank: toRank}, Err: err}
	}
	to, err := b.Square(toFile, toRank)
	if err != nil {
		return &board.IllegalMoveError{From: from, To: board.Square{File: toFile, Rank: toRank}, Err: err}
	}
	return b.Move(from, to)
}
