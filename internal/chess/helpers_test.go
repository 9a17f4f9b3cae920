package chess

import (
	"strings"
	"testing"

	"golang.org/x/exp/slices"
)

// setup builds a position from placements like "Ke1" (White king on e1) or "pd7"
// (Black pawn on d7). Castling rights are all set.
func setup(t *testing.T, turn Color, placements ...string) *PositionState {
	t.Helper()
	b := NewEmptyBoard()
	for _, pl := range placements {
		if len(pl) != 3 {
			t.Fatalf("bad placement %q", pl)
		}
		kind, ok := ParsePieceType(pl[:1])
		if !ok {
			t.Fatalf("bad piece letter in %q", pl)
		}
		color := Black
		if strings.ToUpper(pl[:1]) == pl[:1] {
			color = White
		}
		sq, err := ParseSquare(pl[1:])
		if err != nil {
			t.Fatalf("bad square in %q: %v", pl, err)
		}
		b.Place(sq, NewPiece(kind, color))
	}
	s := NewPositionState(b)
	s.Turn = turn
	return s
}

// play applies a legal move given in coordinate notation.
func play(t *testing.T, s *PositionState, uci string) *Move {
	t.Helper()
	from, err := ParseSquare(uci[0:2])
	if err != nil {
		t.Fatalf("bad move %q: %v", uci, err)
	}
	to, err := ParseSquare(uci[2:4])
	if err != nil {
		t.Fatalf("bad move %q: %v", uci, err)
	}
	promo := Queen
	if len(uci) == 5 {
		promo, _ = ParsePieceType(uci[4:])
	}
	m, ok := FindMove(s, from, to, promo)
	if !ok {
		t.Fatalf("move %s not legal for %s; legal: %v", uci, s.Turn, moveStrings(LegalMoves(s, s.Turn)))
	}
	ApplyMove(s, m)
	return m
}

func moveStrings(moves []*Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}

func sq(s string) Square {
	return MustParseSquare(s)
}

func hasMove(moves []*Move, uci string) bool {
	for _, m := range moves {
		if m.String() == uci {
			return true
		}
	}
	return false
}

func perft(s *PositionState, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := LegalMoves(s, s.Turn)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, m := range moves {
		next := s.Copy()
		ApplyMove(next, m)
		nodes += perft(next, depth-1)
	}
	return nodes
}
