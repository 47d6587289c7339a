package history

import "github.com/park285/chess-movelog/internal/board"

// Log is the ordered, append-only sequence of MoveRecords of one game.
// The only permitted mutation after append is AmendLastPromotion.
type Log struct {
	records []MoveRecord
}

func NewLog() *Log {
	return &Log{records: make([]MoveRecord, 0, 64)}
}

// Append adds rec to the end of the log. The log keeps its own copy of the
// captured piece.
func (l *Log) Append(rec MoveRecord) {
	if rec.Captured != nil {
		c := *rec.Captured
		rec.Captured = &c
	}
	l.records = append(l.records, rec)
}

// AmendLastPromotion flags the most recent record as a promotion.
// It reports whether a record changed: false for an empty log or a record
// that is already flagged.
func (l *Log) AmendLastPromotion() bool {
	n := len(l.records)
	if n == 0 || l.records[n-1].Promotion {
		return false
	}
	l.records[n-1].Promotion = true
	return true
}

func (l *Log) Len() int { return len(l.records) }

// Last returns the most recent record, if any.
func (l *Log) Last() (MoveRecord, bool) {
	if len(l.records) == 0 {
		return MoveRecord{}, false
	}
	return l.records[len(l.records)-1], true
}

// At returns the record at index i (0-based ply index).
func (l *Log) At(i int) (MoveRecord, bool) {
	if i < 0 || i >= len(l.records) {
		return MoveRecord{}, false
	}
	return l.records[i], true
}

// Records returns a copy of the log; callers cannot reach the stored records.
func (l *Log) Records() []MoveRecord {
	out := make([]MoveRecord, len(l.records))
	for i, r := range l.records {
		out[i] = r
		if r.Captured != nil {
			c := *r.Captured
			out[i].Captured = &c
		}
	}
	return out
}

// Occurrences counts records whose resulting position has the given hash.
func (l *Log) Occurrences(hash string) int {
	if hash == "" {
		return 0
	}
	n := 0
	for _, r := range l.records {
		if r.Hash == hash {
			n++
		}
	}
	return n
}

// SideToMove derives the side to move from the log length.
func (l *Log) SideToMove() board.Side { return SideToMove(len(l.records)) }
