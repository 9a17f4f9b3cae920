package chess

// ApplyMove performs m on s: relocates the mover, removes any captured piece
// (beside the mover for en passant), moves the rook of a castle, substitutes
// a promoted piece, then updates castling rights, the half-move clock, the
// last move, the history and the side to move.
//
// ApplyMove does not validate m. The mover is looked up on s's own board, so
// a move generated from one state may be applied to any copy of it.
func ApplyMove(s *PositionState, m *Move) {
	b := s.Board
	mover := b.PieceAt(m.From)
	if mover == nil {
		invariant(ErrMissingPiece, "%s", m)
	}

	captureSq := m.CapturedSquare()
	captured := b.Remove(captureSq)
	if captured != nil && captured.Color == mover.Color {
		invariant(ErrMissingPiece, "%s captures own %s", m, captured)
	}

	s.Castling.UpdateOnMove(mover, m.From)
	s.Castling.UpdateOnCapture(captured, captureSq)

	b.Remove(m.From)
	b.Place(m.To, mover)

	if m.Castling {
		rookFrom, rookTo := castleRookSquares(m.To)
		if rook := b.PieceAt(rookFrom); rook != nil {
			b.Place(rookTo, rook)
		}
		s.Castling.DisableAll(mover.Color)
	}

	if m.Promotion != nil {
		promoted := m.Promotion.Clone()
		promoted.Color = mover.Color
		b.Place(m.To, promoted)
	}

	if mover.Type == Pawn || captured != nil {
		s.HalfMoveClock = 0
	} else {
		s.HalfMoveClock++
	}
	s.LastMove = &LastMove{Piece: *mover, From: m.From, To: m.To}
	s.LastMove.Piece.pos = m.From
	s.History = append(s.History, m)
	s.Turn = s.Turn.Opposite()
}
