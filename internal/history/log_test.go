package history

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/park285/chess-movelog/internal/board"
)

func rec(from, to string, hash string) MoveRecord {
	return MoveRecord{
		Piece:    board.Piece{Side: board.SideA, Type: board.Pawn},
		PrevFile: from[:1], PrevRank: int(from[1] - '0'),
		PostFile: to[:1], PostRank: int(to[1] - '0'),
		Hash: hash,
	}
}

func TestAmendLastPromotionOnlyTouchesLast(t *testing.T) {
	l := NewLog()
	l.Append(rec("a2", "a4", "h1"))
	l.Append(rec("b7", "b5", "h2"))
	l.Append(rec("b7", "b8", "h3"))

	if !l.AmendLastPromotion() {
		t.Fatalf("expected amendment of last record")
	}
	got := l.Records()
	for i, r := range got[:2] {
		if r.Promotion {
			t.Fatalf("record %d must not be flagged", i)
		}
	}
	if !got[2].Promotion {
		t.Fatalf("last record must be flagged")
	}
	if l.AmendLastPromotion() {
		t.Fatalf("second amendment must be a no-op")
	}
}

func TestAmendOnEmptyLogIsNoop(t *testing.T) {
	l := NewLog()
	if l.AmendLastPromotion() {
		t.Fatalf("empty log amendment should report no change")
	}
	if l.Len() != 0 {
		t.Fatalf("empty log grew")
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	l := NewLog()
	r := rec("e4", "d5", "x")
	r.Captured = &board.Piece{Side: board.SideB, Type: board.Pawn}
	l.Append(r)

	out := l.Records()
	out[0].Hash = "tampered"
	out[0].Captured.Type = board.Queen

	again := l.Records()
	want := []MoveRecord{r}
	want[0].Captured = &board.Piece{Side: board.SideB, Type: board.Pawn}
	if diff := cmp.Diff(want, again); diff != "" {
		t.Fatalf("log mutated through copy (-want +got):\n%s", diff)
	}
}

func TestSideToMoveParity(t *testing.T) {
	for n := 0; n < 6; n++ {
		want := board.SideA
		if n%2 == 1 {
			want = board.SideB
		}
		if got := SideToMove(n); got != want {
			t.Fatalf("SideToMove(%d) = %v, want %v", n, got, want)
		}
	}
	l := NewLog()
	l.Append(rec("e2", "e4", "a"))
	if l.SideToMove() != board.SideB {
		t.Fatalf("after one ply black should move")
	}
}

func TestOccurrencesAndAccessors(t *testing.T) {
	l := NewLog()
	l.Append(rec("g1", "f3", "p1"))
	l.Append(rec("g8", "f6", "p2"))
	l.Append(rec("f3", "g1", "p3"))
	l.Append(rec("f6", "g8", "p0"))
	l.Append(rec("g1", "f3", "p1"))

	if got := l.Occurrences("p1"); got != 2 {
		t.Fatalf("Occurrences(p1) = %d, want 2", got)
	}
	if got := l.Occurrences(""); got != 0 {
		t.Fatalf("empty hash should never match, got %d", got)
	}
	last, ok := l.Last()
	if !ok || last.UCI() != "g1f3" {
		t.Fatalf("unexpected last record %+v", last)
	}
	if _, ok := l.At(5); ok {
		t.Fatalf("At out of range should fail")
	}
	if r, ok := l.At(1); !ok || r.UCI() != "g8f6" {
		t.Fatalf("At(1) = %+v", r)
	}
}

func TestNewMoveRecordCopiesEvent(t *testing.T) {
	captured := &board.Piece{Side: board.SideB, Type: board.Knight}
	ev := board.MoveEvent{
		From:     board.Square{File: "e", Rank: 4},
		To:       board.Square{File: "f", Rank: 5, Piece: &board.Piece{Side: board.SideA, Type: board.Pawn}},
		Piece:    board.Piece{Side: board.SideA, Type: board.Pawn},
		Captured: captured,
		Notation: "exf5",
	}
	r := NewMoveRecord(ev, "hash")
	captured.Type = board.Queen

	want := MoveRecord{
		Piece:    board.Piece{Side: board.SideA, Type: board.Pawn},
		PrevFile: "e", PrevRank: 4,
		PostFile: "f", PostRank: 5,
		Captured: &board.Piece{Side: board.SideB, Type: board.Knight},
		Notation: "exf5",
		Hash:     "hash",
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("unexpected record (-want +got):\n%s", diff)
	}
}
