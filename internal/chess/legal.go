package chess

// LegalMoves keeps the pseudo-legal moves of c that do not leave c's king
// attacked. Each candidate is tried on its own copy of s; s is not modified.
func (g *Generator) LegalMoves(s *PositionState, c Color) []*Move {
	var legal []*Move
	for _, m := range g.PseudoLegalMoves(s, c) {
		if leavesKingSafe(s, m, c) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMove stops at the first legal move found.
func (g *Generator) HasLegalMove(s *PositionState, c Color) bool {
	for _, p := range s.Board.Pieces(c) {
		for _, m := range g.PieceMoves(s, p) {
			if leavesKingSafe(s, m, c) {
				return true
			}
		}
	}
	return false
}

// IsLegalMove checks a single move: the piece on m.From belongs to c, the
// move matches one of its pseudo-legal candidates, and c's king is safe
// afterwards.
func (g *Generator) IsLegalMove(s *PositionState, m *Move, c Color) bool {
	if m == nil {
		return false
	}
	p := s.Board.PieceAt(m.From)
	if p == nil || p.Color != c || p.Type != m.Piece.Type {
		return false
	}
	promo := Queen
	if m.Promotion != nil {
		promo = m.Promotion.Type
	}
	for _, candidate := range g.PieceMoves(s, p) {
		if candidate.Matches(m.From, m.To, promo) && candidate.Castling == m.Castling && candidate.EnPassant == m.EnPassant {
			return leavesKingSafe(s, candidate, c)
		}
	}
	return false
}

// FindMove returns the legal move of the side to move going from -> to,
// promoting to t where that applies.
func (g *Generator) FindMove(s *PositionState, from, to Square, t PieceType) (*Move, bool) {
	for _, m := range g.LegalMoves(s, s.Turn) {
		if m.Matches(from, to, t) {
			return m, true
		}
	}
	return nil, false
}

func leavesKingSafe(s *PositionState, m *Move, c Color) bool {
	sim := s.withoutHistory()
	ApplyMove(sim, m)
	return !kingAttacked(sim.Board, c)
}

// LegalMoves uses the default handlers.
func LegalMoves(s *PositionState, c Color) []*Move {
	return defaultGenerator.LegalMoves(s, c)
}

func HasLegalMove(s *PositionState, c Color) bool {
	return defaultGenerator.HasLegalMove(s, c)
}

func IsLegalMove(s *PositionState, m *Move, c Color) bool {
	return defaultGenerator.IsLegalMove(s, m, c)
}

func FindMove(s *PositionState, from, to Square, t PieceType) (*Move, bool) {
	return defaultGenerator.FindMove(s, from, to, t)
}
