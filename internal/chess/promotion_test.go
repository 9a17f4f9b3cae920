package chess

import "testing"

func TestPawnOnSeventhGeneratesFourPromotions(t *testing.T) {
	s := setup(t, White, "Pe7", "Ka1", "kh1")
	var promos []*Move
	for _, m := range LegalMoves(s, White) {
		if m.From == sq("e7") {
			promos = append(promos, m)
		}
	}
	if len(promos) != 4 {
		t.Fatalf("got %d e7 moves: %v", len(promos), moveStrings(promos))
	}
	seen := map[PieceType]bool{}
	for _, m := range promos {
		if m.To != sq("e8") || !m.IsPromotion() || m.IsCapture() {
			t.Fatalf("unexpected move %+v", m)
		}
		if m.Promotion.Color != White {
			t.Fatalf("promoted piece has wrong color")
		}
		seen[m.Promotion.Type] = true
	}
	for _, kind := range []PieceType{Queen, Rook, Bishop, Knight} {
		if !seen[kind] {
			t.Fatalf("missing promotion to %s", kind)
		}
	}
}

func TestPromotionCaptureAndApply(t *testing.T) {
	s := setup(t, White, "Pg7", "rh8", "Ka1", "kc6")
	m := play(t, s, "g7h8n")
	if !m.IsCapture() || m.Captured.Type != Rook {
		t.Fatalf("promotion capture lost the victim: %+v", m)
	}
	p := s.Board.PieceAt(sq("h8"))
	if p == nil || p.Type != Knight || p.Color != White || p.Square() != sq("h8") {
		t.Fatalf("h8 holds %v, want a white knight", p)
	}
	if !s.Board.IsEmpty(sq("g7")) {
		t.Fatalf("g7 should be empty")
	}
	if s.Castling.BlackKingside {
		t.Fatalf("capturing the h8 rook should clear black kingside")
	}
}

func TestBlackPromotion(t *testing.T) {
	s := setup(t, Black, "pb2", "Kh8", "ka8")
	play(t, s, "b2b1q")
	if p := s.Board.PieceAt(sq("b1")); p == nil || p.Type != Queen || p.Color != Black {
		t.Fatalf("b1 holds %v", p)
	}
}

func TestPromotionStrategies(t *testing.T) {
	tests := []struct {
		name     string
		strategy PromotionStrategy
		want     []PieceType
	}{
		{"nil defaults to queen", nil, []PieceType{Queen}},
		{"queen", QueenPromotion{}, []PieceType{Queen}},
		{"chosen rook", ChosenPromotion{Type: Rook}, []PieceType{Rook}},
		{"all", AllPromotions{}, []PieceType{Queen, Rook, Bishop, Knight}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := setup(t, White, "Pa7", "Kh1", "kh8")
			h := NewPromotionHandler(tt.strategy)
			pawn := s.Board.PieceAt(sq("a7"))
			if !h.CanHandle(s.Board, pawn, sq("a7"), sq("a8")) {
				t.Fatalf("far-rank push should match")
			}
			moves := h.Handle(s, pawn, sq("a7"), sq("a8"))
			if len(moves) != len(tt.want) {
				t.Fatalf("got %d moves, want %d", len(moves), len(tt.want))
			}
			for i, m := range moves {
				if m.Promotion.Type != tt.want[i] {
					t.Fatalf("move %d promotes to %s, want %s", i, m.Promotion.Type, tt.want[i])
				}
			}
		})
	}
}

func TestGeneratorWithQueenOnlyPromotion(t *testing.T) {
	g := NewGenerator(NewCastlingHandler(), NewEnPassantHandler(), NewPromotionHandler(nil))
	s := setup(t, White, "Pe7", "Ka1", "kh1")
	count := 0
	for _, m := range g.LegalMoves(s, White) {
		if m.IsPromotion() {
			count++
			if m.Promotion.Type != Queen {
				t.Fatalf("queen-only generator produced %s", m)
			}
		}
	}
	if count != 1 {
		t.Fatalf("got %d promotions, want 1", count)
	}
}
