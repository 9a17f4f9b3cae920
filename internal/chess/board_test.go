package chess

import (
	"errors"
	"testing"
)

func TestStandardBoardLayout(t *testing.T) {
	b := NewStandardBoard()
	if n := len(b.Pieces(White)); n != 16 {
		t.Fatalf("white pieces = %d, want 16", n)
	}
	if n := len(b.Pieces(Black)); n != 16 {
		t.Fatalf("black pieces = %d, want 16", n)
	}
	tests := []struct {
		at    string
		kind  PieceType
		color Color
	}{
		{"e1", King, White},
		{"d1", Queen, White},
		{"a8", Rook, Black},
		{"g8", Knight, Black},
		{"c2", Pawn, White},
		{"f7", Pawn, Black},
	}
	for _, tt := range tests {
		p := b.PieceAt(sq(tt.at))
		if p == nil || p.Type != tt.kind || p.Color != tt.color {
			t.Fatalf("%s holds %v, want %s %s", tt.at, p, tt.color, tt.kind)
		}
		if p.Square() != sq(tt.at) {
			t.Fatalf("%s piece thinks it is on %s", tt.at, p.Square())
		}
	}
	if !b.IsEmpty(sq("e4")) {
		t.Fatalf("e4 should be empty")
	}
}

func TestBoardAllPiecesRowMajor(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(sq("h8"), NewPiece(King, Black))
	b.Place(sq("b1"), NewPiece(Rook, White))
	b.Place(sq("a2"), NewPiece(Pawn, White))
	b.Place(sq("e1"), NewPiece(King, White))

	var got []string
	for _, p := range b.AllPieces() {
		got = append(got, p.Square().String())
	}
	want := []string{"b1", "e1", "a2", "h8"}
	if len(got) != len(want) {
		t.Fatalf("AllPieces = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AllPieces = %v, want %v", got, want)
		}
	}
}

func TestBoardPlaceMovesPieceAndRemove(t *testing.T) {
	b := NewEmptyBoard()
	q := NewPiece(Queen, White)
	b.Place(sq("d1"), q)
	b.Place(sq("d4"), q)
	if !b.IsEmpty(sq("d1")) {
		t.Fatalf("d1 still occupied after the queen moved")
	}
	if b.PieceAt(sq("d4")) != q || q.Square() != sq("d4") {
		t.Fatalf("queen not on d4")
	}
	if got := b.Remove(sq("d4")); got != q {
		t.Fatalf("Remove returned %v", got)
	}
	if b.Remove(sq("d4")) != nil {
		t.Fatalf("second Remove should return nil")
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewStandardBoard()
	cp := b.Copy()
	if !b.Equal(cp) {
		t.Fatalf("copy differs from original")
	}
	if cp.PieceAt(sq("e2")) == b.PieceAt(sq("e2")) {
		t.Fatalf("copy shares piece pointers")
	}

	pawn := cp.Remove(sq("e2"))
	cp.Place(sq("e4"), pawn)
	if b.IsEmpty(sq("e2")) || !b.IsEmpty(sq("e4")) {
		t.Fatalf("mutating the copy changed the original")
	}
	if b.PieceAt(sq("e2")).Square() != sq("e2") {
		t.Fatalf("original pawn position changed")
	}
	if b.Equal(cp) {
		t.Fatalf("boards should differ after the copy moved a pawn")
	}
}

func TestFindKingPanicsWhenMissing(t *testing.T) {
	b := NewEmptyBoard()
	b.Place(sq("e1"), NewPiece(King, White))
	if got := b.FindKing(White); got != sq("e1") {
		t.Fatalf("FindKing(White) = %s", got)
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrKingNotFound) {
			t.Fatalf("panic %v, want ErrKingNotFound", r)
		}
	}()
	b.FindKing(Black)
}
