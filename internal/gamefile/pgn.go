package gamefile

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// PGNHeader carries the optional tag pairs of a PGN export.
type PGNHeader struct {
	Event  string
	Site   string
	Date   time.Time // zero exports as ????.??.??
	White  string
	Black  string
	Result string // white | black | draw; anything else exports as "*"
}

// WritePGN exports the recorded notation of g as PGN movetext. Plies without
// notation are written in coordinate form.
func WritePGN(w io.Writer, g *Game, h PGNHeader) error {
	if g == nil {
		return fmt.Errorf("pgn: nil game")
	}
	_, err := io.WriteString(w, buildPGN(g, h))
	return err
}

func buildPGN(g *Game, h PGNHeader) string {
	var b strings.Builder
	date := "????.??.??"
	if !h.Date.IsZero() {
		date = h.Date.Format("2006.01.02")
	}
	result := mapResultToPGN(h.Result)

	b.WriteString(fmt.Sprintf("[Event \"%s\"]\n", orDefault(sanitizePGN(h.Event), "?")))
	b.WriteString(fmt.Sprintf("[Site \"%s\"]\n", orDefault(sanitizePGN(h.Site), "?")))
	b.WriteString(fmt.Sprintf("[Date \"%s\"]\n", date))
	b.WriteString(fmt.Sprintf("[White \"%s\"]\n", orDefault(sanitizePGN(h.White), "?")))
	b.WriteString(fmt.Sprintf("[Black \"%s\"]\n", orDefault(sanitizePGN(h.Black), "?")))
	if g.ID != "" {
		b.WriteString(fmt.Sprintf("[GameId \"%s\"]\n", sanitizePGN(g.ID)))
	}
	b.WriteString(fmt.Sprintf("[Result \"%s\"]\n\n", result))

	for i, p := range g.Plies {
		if i%2 == 0 {
			b.WriteString(fmt.Sprintf("%d. ", i/2+1))
		}
		move := strings.TrimSpace(p.Notation)
		if move == "" {
			move = p.UCI()
		}
		b.WriteString(move)
		b.WriteString(" ")
	}
	b.WriteString(result)
	b.WriteString("\n")
	return b.String()
}

func mapResultToPGN(result string) string {
	switch strings.ToLower(strings.TrimSpace(result)) {
	case "white":
		return "1-0"
	case "black":
		return "0-1"
	case "draw":
		return "1/2-1/2"
	default:
		return "*"
	}
}

func sanitizePGN(s string) string {
	s = strings.ReplaceAll(s, "\\", " ")
	s = strings.ReplaceAll(s, "\"", "'")
	return strings.TrimSpace(s)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
