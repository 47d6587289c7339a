package session

import (
	"strings"

	"go.uber.org/zap"

	"github.com/park285/chess-movelog/internal/board"
	"github.com/park285/chess-movelog/internal/config"
	"github.com/park285/chess-movelog/internal/obslog"
)

// BoardFactory builds the fresh Board a session owns.
type BoardFactory func() board.Board

// Option configures New and Load.
type Option func(*settings)

type settings struct {
	factory BoardFactory
	promo   board.PieceType
	logger  *zap.Logger
	id      string
}

// WithBoardFactory overrides the default chess board. A nil factory is ignored.
// WithPromotion has no effect on boards built by a custom factory.
func WithBoardFactory(f BoardFactory) Option {
	return func(s *settings) {
		if f != nil {
			s.factory = f
		}
	}
}

// WithPromotion sets the piece pawns promote to on the default board.
// Only queen, rook, bishop and knight are accepted.
func WithPromotion(t board.PieceType) Option {
	return func(s *settings) {
		if board.IsPromotionPiece(t) {
			s.promo = t
		}
	}
}

// WithLogger sets the logger used for session events.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithID fixes the session ID instead of generating one.
func WithID(id string) Option {
	return func(s *settings) {
		if v := strings.TrimSpace(id); v != "" {
			s.id = v
		}
	}
}

// OptionsFromConfig maps application config onto session options.
func OptionsFromConfig(cfg *config.AppConfig) ([]Option, error) {
	if cfg == nil {
		return nil, nil
	}
	promo, err := cfg.Promotion()
	if err != nil {
		return nil, err
	}
	return []Option{WithPromotion(promo)}, nil
}

func buildSettings(opts []Option) settings {
	st := settings{
		promo:  board.Queen,
		logger: obslog.L(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&st)
		}
	}
	return st
}
