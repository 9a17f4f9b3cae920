package chess

import (
	"math/rand"
	"testing"
)

func TestInitialPositionHasTwentyMoves(t *testing.T) {
	s := NewStandardPosition()
	moves := LegalMoves(s, White)
	if len(moves) != 20 {
		t.Fatalf("got %d moves: %v", len(moves), moveStrings(moves))
	}
	pawns, knights := 0, 0
	for _, m := range moves {
		switch m.Piece.Type {
		case Pawn:
			pawns++
		case Knight:
			knights++
		}
	}
	if pawns != 16 || knights != 4 {
		t.Fatalf("pawn moves = %d, knight moves = %d", pawns, knights)
	}
	eval := Evaluate(s, White)
	if eval.Status != StatusInProgress || eval.HasWinner {
		t.Fatalf("initial position evaluates to %s", eval)
	}
}

func TestLegalMovesDeterministic(t *testing.T) {
	s := NewStandardPosition()
	first := LegalMoves(s, White)
	second := LegalMoves(s, White)
	for i := range first {
		if first[i].String() != second[i].String() {
			t.Fatalf("order differs at %d: %s vs %s", i, first[i], second[i])
		}
	}
	if first[0].From != sq("b1") {
		t.Fatalf("first move should come from the a1-side scan, got %s", first[0])
	}
}

func TestPerftInitialPosition(t *testing.T) {
	s := NewStandardPosition()
	for depth, want := range map[int]int{1: 20, 2: 400, 3: 8902} {
		if got := perft(s, depth); got != want {
			t.Fatalf("perft(%d) = %d, want %d", depth, got, want)
		}
	}
}

func TestPinnedPieceCannotLeaveLine(t *testing.T) {
	s := setup(t, White, "Ke1", "Ne2", "ke8", "re7")
	for _, m := range LegalMoves(s, White) {
		if m.From == sq("e2") {
			t.Fatalf("pinned knight moved: %s", m)
		}
	}
}

func TestKingCannotCaptureDefendedPiece(t *testing.T) {
	s := setup(t, White, "Ke1", "ke8", "pd2", "pc3")
	moves := LegalMoves(s, White)
	if hasMove(moves, "e1d2") {
		t.Fatalf("d2 is defended by c3")
	}
}

func TestMustEscapeCheck(t *testing.T) {
	s := setup(t, White, "Ke1", "Pa2", "ke8", "qe7")
	for _, m := range LegalMoves(s, White) {
		if m.From == sq("a2") {
			t.Fatalf("%s ignores the check", m)
		}
	}
}

func TestIsLegalMove(t *testing.T) {
	s := NewStandardPosition()
	e4, ok := FindMove(s, sq("e2"), sq("e4"), Queen)
	if !ok {
		t.Fatalf("e2e4 not found")
	}
	if !IsLegalMove(s, e4, White) {
		t.Fatalf("e2e4 should be legal for white")
	}
	if IsLegalMove(s, e4, Black) {
		t.Fatalf("e2e4 belongs to white")
	}
	bogus := NormalMove(sq("e2"), sq("e5"), s.Board.PieceAt(sq("e2")))
	if IsLegalMove(s, bogus, White) {
		t.Fatalf("e2e5 is not a pawn shape")
	}
	if IsLegalMove(s, nil, White) {
		t.Fatalf("nil move accepted")
	}

	pinned := setup(t, White, "Ke1", "Ne2", "ke8", "re7")
	jump := NormalMove(sq("e2"), sq("c3"), pinned.Board.PieceAt(sq("e2")))
	if IsLegalMove(pinned, jump, White) {
		t.Fatalf("pinned knight jump accepted")
	}
}

func TestLegalMovesNeverLeaveKingAttacked(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewStandardPosition()
	for ply := 0; ply < 200; ply++ {
		moves := LegalMoves(s, s.Turn)
		if len(moves) == 0 {
			break
		}
		for _, m := range moves {
			next := s.Copy()
			ApplyMove(next, m)
			if IsInCheck(next, s.Turn) {
				t.Fatalf("ply %d: %s leaves %s in check", ply, m, s.Turn)
			}
		}
		ApplyMove(s, moves[rng.Intn(len(moves))])
	}
}

func TestLegalMoveGenerationDoesNotMutateState(t *testing.T) {
	s := setup(t, White, "Ke1", "Rh1", "Ra1", "Pe5", "Pb7", "ke8", "pd7")
	s.Turn = Black
	play(t, s, "d7d5")
	before := s.Key()
	clock := s.HalfMoveClock
	historyLen := len(s.History)
	LegalMoves(s, White)
	if s.Key() != before || s.HalfMoveClock != clock || len(s.History) != historyLen {
		t.Fatalf("generation changed the state")
	}
}
