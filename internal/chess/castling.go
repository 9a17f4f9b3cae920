package chess

const (
	kingHomeCol      = 4
	kingsideKingCol  = 6
	queensideKingCol = 2
)

// CastlingHandler builds castle moves: a king moving two files.
type CastlingHandler struct{}

func NewCastlingHandler() *CastlingHandler {
	return &CastlingHandler{}
}

func (h *CastlingHandler) CanHandle(_ *Board, p *Piece, from, to Square) bool {
	if p.Type != King || from.row != to.row {
		return false
	}
	dc := to.col - from.col
	return dc == 2 || dc == -2
}

// Handle checks, in order: the castling right, the squares between king and
// rook, that the king is not in check, and that the squares it crosses and
// lands on are not attacked.
func (h *CastlingHandler) Handle(s *PositionState, p *Piece, from, to Square) []*Move {
	color := p.Color
	row := color.homeRow()
	if from.row != row || from.col != kingHomeCol {
		return nil
	}

	var rookCol int
	switch to.col {
	case kingsideKingCol:
		if !s.Castling.Kingside(color) {
			return nil
		}
		rookCol = 7
	case queensideKingCol:
		if !s.Castling.Queenside(color) {
			return nil
		}
		rookCol = 0
	default:
		return nil
	}

	b := s.Board
	rook := b.PieceAt(MustSquare(row, rookCol))
	if rook == nil || rook.Type != Rook || rook.Color != color {
		return nil
	}
	step := 1
	if rookCol < from.col {
		step = -1
	}
	for col := from.col + step; col != rookCol; col += step {
		if !b.IsEmpty(MustSquare(row, col)) {
			return nil
		}
	}

	enemy := color.Opposite()
	if IsSquareAttacked(b, from, enemy) {
		return nil
	}
	for col := from.col + step; ; col += step {
		if IsSquareAttacked(b, MustSquare(row, col), enemy) {
			return nil
		}
		if col == to.col {
			break
		}
	}
	return []*Move{CastleMove(from, to, p)}
}

// castleRookSquares returns the rook's origin and destination for a castle
// whose king lands on kingTo.
func castleRookSquares(kingTo Square) (from, to Square) {
	if kingTo.col == kingsideKingCol {
		return Square{row: kingTo.row, col: 7}, Square{row: kingTo.row, col: 5}
	}
	return Square{row: kingTo.row, col: 0}, Square{row: kingTo.row, col: 3}
}
