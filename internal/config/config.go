package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/park285/chess-movelog/internal/board"
)

type AppConfig struct {
	// PromotionPiece is the notation letter pawns promote to (q, r, b or n).
	PromotionPiece string
	// FileFormat is the default encoding of saved games (json or yaml).
	FileFormat string
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		PromotionPiece: "q",
		FileFormat:     "json",
	}

	if v := strings.TrimSpace(os.Getenv("MOVELOG_PROMOTION_PIECE")); v != "" {
		cfg.PromotionPiece = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("MOVELOG_FILE_FORMAT")); v != "" {
		cfg.FileFormat = strings.ToLower(v)
	}

	if _, err := cfg.Promotion(); err != nil {
		return nil, err
	}
	switch cfg.FileFormat {
	case "json", "yaml", "yml":
	default:
		return nil, fmt.Errorf("MOVELOG_FILE_FORMAT must be json or yaml, got %q", cfg.FileFormat)
	}
	return cfg, nil
}

// Promotion resolves PromotionPiece to a piece type.
func (c *AppConfig) Promotion() (board.PieceType, error) {
	pt, err := board.ParsePieceType(c.PromotionPiece)
	if err != nil {
		return board.NoPieceType, fmt.Errorf("MOVELOG_PROMOTION_PIECE: %w", err)
	}
	switch pt {
	case board.Queen, board.Rook, board.Bishop, board.Knight:
		return pt, nil
	}
	return board.NoPieceType, fmt.Errorf("MOVELOG_PROMOTION_PIECE must be one of q, r, b, n, got %q", c.PromotionPiece)
}
