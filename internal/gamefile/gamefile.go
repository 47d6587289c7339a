// Package gamefile encodes recorded games for saving and restores sessions from them.
//
// Only the coordinates of each ply and the game's promotion piece are
// authoritative. Captures, promotion flags, notation and hashes are written
// for readers of the file and are recomputed on Restore.
package gamefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/park285/chess-movelog/internal/board"
	"github.com/park285/chess-movelog/internal/config"
	"github.com/park285/chess-movelog/internal/history"
	"github.com/park285/chess-movelog/internal/session"
)

const CurrentVersion = 1

var (
	ErrUnknownFormat      = errors.New("unknown game file format")
	ErrUnsupportedVersion = errors.New("unsupported game file version")
	ErrInvalidPromotion   = errors.New("invalid promotion piece")
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromConfig returns the configured default format, JSON when unset.
func FormatFromConfig(cfg *config.AppConfig) (Format, error) {
	if cfg == nil || strings.TrimSpace(cfg.FileFormat) == "" {
		return FormatJSON, nil
	}
	return ParseFormat(cfg.FileFormat)
}

// Game is the saved form of a session. Promotion is the piece pawns promoted
// to while the game was played; empty means queen.
type Game struct {
	Version   int                  `json:"version" yaml:"version"`
	ID        string               `json:"id" yaml:"id"`
	Promotion board.PieceType      `json:"promotion,omitempty" yaml:"promotion,omitempty"`
	Plies     []history.MoveRecord `json:"plies" yaml:"plies"`
}

// FromSession snapshots the history of s.
func FromSession(s *session.Session) *Game {
	return &Game{Version: CurrentVersion, ID: s.ID(), Promotion: s.Promotion(), Plies: s.History()}
}

func Encode(w io.Writer, g *Game, f Format) error {
	if g == nil {
		return fmt.Errorf("encode: nil game")
	}
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func Decode(r io.Reader, f Format) (*Game, error) {
	var g Game
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&g); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&g); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if g.Version == 0 {
		g.Version = CurrentVersion
	}
	if g.Version > CurrentVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, g.Version)
	}
	if g.Promotion != board.NoPieceType && !board.IsPromotionPiece(g.Promotion) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPromotion, g.Promotion)
	}
	return &g, nil
}

// Restore replays g into a new session that keeps the stored ID. The stored
// promotion piece overrides one given in opts.
// Replay errors are returned as produced by session.Load.
func Restore(g *Game, opts ...session.Option) (*session.Session, error) {
	if g == nil {
		return nil, fmt.Errorf("restore: nil game")
	}
	all := append([]session.Option{session.WithID(g.ID)}, opts...)
	if g.Promotion != board.NoPieceType {
		all = append(all, session.WithPromotion(g.Promotion))
	}
	return session.Load(g.Plies, all...)
}
