package chess

// Move describes a single ply. The pieces it carries are snapshots taken when
// the move was built; applying a move looks pieces up on the target board.
type Move struct {
	From  Square
	To    Square
	Piece Piece

	// Captured is the piece removed by the move. For en passant it stood
	// beside the mover, not on To.
	Captured  *Piece
	Castling  bool
	EnPassant bool

	// Promotion replaces the pawn on To when set.
	Promotion *Piece
}

func NormalMove(from, to Square, p *Piece) *Move {
	return &Move{From: from, To: to, Piece: *p}
}

func CaptureMove(from, to Square, p, captured *Piece) *Move {
	return &Move{From: from, To: to, Piece: *p, Captured: captured.Clone()}
}

func CastleMove(from, to Square, king *Piece) *Move {
	return &Move{From: from, To: to, Piece: *king, Castling: true}
}

func EnPassantMove(from, to Square, pawn, victim *Piece) *Move {
	return &Move{From: from, To: to, Piece: *pawn, Captured: victim.Clone(), EnPassant: true}
}

// PromotionMove builds a promotion to kind t. captured may be nil.
func PromotionMove(from, to Square, pawn, captured *Piece, t PieceType) *Move {
	m := &Move{From: from, To: to, Piece: *pawn}
	if captured != nil {
		m.Captured = captured.Clone()
	}
	promoted := NewPiece(t, pawn.Color)
	promoted.pos = to
	m.Promotion = promoted
	return m
}

func (m *Move) IsCapture() bool {
	return m.Captured != nil
}

func (m *Move) IsPromotion() bool {
	return m.Promotion != nil
}

// CapturedSquare is where the captured piece stood.
func (m *Move) CapturedSquare() Square {
	if m.EnPassant {
		return Square{row: m.From.row, col: m.To.col}
	}
	return m.To
}

// String renders coordinate notation, e.g. "e2e4" or "e7e8q".
func (m *Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != nil {
		s += m.Promotion.Type.Letter()
	}
	return s
}

// Matches reports whether m goes from -> to and, for promotions, promotes to
// kind t. t is ignored for other moves.
func (m *Move) Matches(from, to Square, t PieceType) bool {
	if m.From != from || m.To != to {
		return false
	}
	return m.Promotion == nil || m.Promotion.Type == t
}

// LastMove is the record of the most recently applied ply. It exists to
// derive the en-passant target for exactly one following ply.
type LastMove struct {
	Piece Piece
	From  Square
	To    Square
}

// EnPassantTarget is the square skipped by a two-square pawn advance.
func (lm *LastMove) EnPassantTarget() (Square, bool) {
	if lm == nil || lm.Piece.Type != Pawn {
		return Square{}, false
	}
	diff := lm.To.row - lm.From.row
	if diff != 2 && diff != -2 {
		return Square{}, false
	}
	return Square{row: (lm.From.row + lm.To.row) / 2, col: lm.To.col}, true
}
