package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/park285/chess-movelog/internal/history"
)

// Load rebuilds a session by replaying plies on a fresh board. Only the
// coordinates of each ply are read; captures, promotion flags, notation and
// hashes are re-derived by the live recording path.
//
// The first ply the board rejects aborts the load: no session is returned
// and the board's error is passed through (errors.Is(err, board.ErrIllegalMove)).
func Load(plies []history.MoveRecord, opts ...Option) (*Session, error) {
	return load(buildSettings(opts), plies)
}

func load(st settings, plies []history.MoveRecord) (*Session, error) {
	s := newSession(st)
	s.logger.Debug("replay_start", zap.String("session_id", s.id), zap.Int("plies", len(plies)))

	for i, p := range plies {
		if err := applyPly(s.board, p.PrevFile, p.PrevRank, p.PostFile, p.PostRank); err != nil {
			s.logger.Debug("replay_abort",
				zap.String("session_id", s.id),
				zap.Int("ply", i+1),
				zap.String("move", p.UCI()),
				zap.Error(err),
			)
			return nil, err
		}
	}

	if s.log.Len() != len(plies) || s.log.Len() != s.board.Plies() {
		return nil, fmt.Errorf("%w: recorded %d, board %d, input %d", ErrHistoryDesync, s.log.Len(), s.board.Plies(), len(plies))
	}
	s.logger.Debug("replay_done", zap.String("session_id", s.id), zap.Int("plies", s.log.Len()))
	return s, nil
}
