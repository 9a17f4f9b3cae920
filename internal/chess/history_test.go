package chess

import "testing"

func TestHistorySnapshotsOmitMoveList(t *testing.T) {
	s := NewStandardPosition()
	h := NewHistory(s)
	for _, uci := range []string{"e2e4", "e7e5", "g1f3"} {
		m := play(t, s, uci)
		h.Record(s, m)
	}

	if h.Len() != 3 || len(h.Moves()) != 3 {
		t.Fatalf("len = %d, moves = %d", h.Len(), len(h.Moves()))
	}
	positions := h.Positions()
	if len(positions) != 4 {
		t.Fatalf("positions = %d, want 4", len(positions))
	}
	for i, p := range positions {
		if len(p.History) != 0 {
			t.Fatalf("snapshot %d carries %d moves", i, len(p.History))
		}
	}
	if got, want := positions[3].Key(), s.Key(); got != want {
		t.Fatalf("last snapshot key = %q, want %q", got, want)
	}
	if len(s.History) != 3 {
		t.Fatalf("live history = %d, want 3", len(s.History))
	}
}

func TestCopyKeepsMoveList(t *testing.T) {
	s := NewStandardPosition()
	play(t, s, "d2d4")
	cp := s.Copy()
	if len(cp.History) != 1 || cp.History[0] != s.History[0] {
		t.Fatalf("copy history = %v", cp.History)
	}
	play(t, cp, "d7d5")
	if len(s.History) != 1 {
		t.Fatalf("original history grew to %d", len(s.History))
	}
}
