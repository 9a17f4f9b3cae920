package chess

import "testing"

func TestPawnAttacksDiagonalsOnly(t *testing.T) {
	s := setup(t, White, "Pe4", "Ka1", "kh8")
	attacked := SquaresAttackedBy(s.Board, White)
	for _, at := range []string{"d5", "f5"} {
		if !attacked.Has(sq(at)) {
			t.Fatalf("%s should be attacked by the e4 pawn", at)
		}
	}
	if attacked.Has(sq("e5")) {
		t.Fatalf("pawns do not attack forward")
	}
}

func TestSliderAttackStopsAtFirstOccupant(t *testing.T) {
	s := setup(t, White, "Ra1", "Pa4", "pd1", "Kh1", "kh8")
	attacked := SquaresAttackedBy(s.Board, White)
	for _, at := range []string{"a2", "a3", "a4", "b1", "c1", "d1"} {
		if !attacked.Has(sq(at)) {
			t.Fatalf("%s should be attacked", at)
		}
	}
	for _, at := range []string{"a5", "e1"} {
		if attacked.Has(sq(at)) {
			t.Fatalf("%s is behind a blocker", at)
		}
	}
}

func TestIsSquareAttackedMatchesAttackMap(t *testing.T) {
	s := NewStandardPosition()
	play(t, s, "e2e4")
	play(t, s, "d7d5")
	for _, c := range []Color{White, Black} {
		set := SquaresAttackedBy(s.Board, c)
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				at := MustSquare(row, col)
				if set.Has(at) != IsSquareAttacked(s.Board, at, c) {
					t.Fatalf("%s disagrees on %s", c, at)
				}
			}
		}
	}
}

func TestIsInCheck(t *testing.T) {
	s := setup(t, Black, "Ke1", "Re7", "ke8")
	if !IsInCheck(s, Black) {
		t.Fatalf("black king on e8 faces a rook on e7")
	}
	if IsInCheck(s, White) {
		t.Fatalf("white is not in check")
	}
}
