package chess

// Generator produces moves by combining piece shapes with an ordered list of
// special-move handlers. The order of handlers is the dispatch order.
type Generator struct {
	handlers []SpecialMoveHandler
}

// NewGenerator uses DefaultHandlers when none are given.
func NewGenerator(handlers ...SpecialMoveHandler) *Generator {
	if len(handlers) == 0 {
		handlers = DefaultHandlers()
	}
	return &Generator{handlers: handlers}
}

var defaultGenerator = NewGenerator()

// PseudoLegalMoves lists moves of color c that follow piece shapes and
// special-move rules but may leave c's king attacked. Pieces are visited in
// row-major order from a1.
func (g *Generator) PseudoLegalMoves(s *PositionState, c Color) []*Move {
	var moves []*Move
	for _, p := range s.Board.Pieces(c) {
		moves = append(moves, g.PieceMoves(s, p)...)
	}
	return moves
}

// PieceMoves lists the pseudo-legal moves of one piece.
func (g *Generator) PieceMoves(s *PositionState, p *Piece) []*Move {
	from := p.Square()
	var moves []*Move
	for _, to := range g.candidates(s.Board, p) {
		moves = append(moves, g.build(s, p, from, to)...)
	}
	return moves
}

// candidates are the shape destinations plus the squares only a special move
// can reach: the king's two-file step and a pawn's diagonal onto an empty
// square.
func (g *Generator) candidates(b *Board, p *Piece) []Square {
	dests := p.Destinations(b)
	from := p.Square()
	switch p.Type {
	case King:
		if from.row == p.Color.homeRow() && from.col == kingHomeCol {
			dests = append(dests, Square{row: from.row, col: kingsideKingCol}, Square{row: from.row, col: queensideKingCol})
		}
	case Pawn:
		for _, dc := range []int{-1, 1} {
			if sq, ok := from.offset(p.Color.forward(), dc); ok && b.IsEmpty(sq) {
				dests = append(dests, sq)
			}
		}
	}
	return dests
}

// build dispatches one candidate. The first handler whose CanHandle matches
// decides the outcome; otherwise it is a normal move or capture.
func (g *Generator) build(s *PositionState, p *Piece, from, to Square) []*Move {
	for _, h := range g.handlers {
		if h.CanHandle(s.Board, p, from, to) {
			return h.Handle(s, p, from, to)
		}
	}
	return standardMove(s.Board, p, from, to)
}

func standardMove(b *Board, p *Piece, from, to Square) []*Move {
	target := b.PieceAt(to)
	switch {
	case target == nil:
		if p.Type == Pawn && from.col != to.col {
			return nil
		}
		return []*Move{NormalMove(from, to, p)}
	case target.Color != p.Color && target.Type != King:
		return []*Move{CaptureMove(from, to, p, target)}
	}
	return nil
}
