package chess

// EnPassantHandler builds en-passant captures. The target is read from the
// state's last move every time and is never cached.
type EnPassantHandler struct{}

func NewEnPassantHandler() *EnPassantHandler {
	return &EnPassantHandler{}
}

// CanHandle matches a pawn stepping one rank forward and one file sideways
// onto an empty square.
func (h *EnPassantHandler) CanHandle(b *Board, p *Piece, from, to Square) bool {
	if p.Type != Pawn {
		return false
	}
	dc := to.col - from.col
	return to.row-from.row == p.Color.forward() && (dc == 1 || dc == -1) && b.IsEmpty(to)
}

func (h *EnPassantHandler) Handle(s *PositionState, p *Piece, from, to Square) []*Move {
	lm := s.LastMove
	if lm == nil || lm.Piece.Type != Pawn || lm.Piece.Color == p.Color {
		return nil
	}
	if diff := lm.To.row - lm.From.row; diff != 2 && diff != -2 {
		return nil
	}
	if lm.To.col != to.col || lm.To.row != from.row {
		return nil
	}
	victim := s.Board.PieceAt(lm.To)
	if victim == nil || victim.Type != Pawn || victim.Color == p.Color {
		return nil
	}
	return []*Move{EnPassantMove(from, to, p, victim)}
}
