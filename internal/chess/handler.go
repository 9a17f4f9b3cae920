package chess

// SpecialMoveHandler recognises and builds one kind of special move.
//
// CanHandle is a cheap shape test. Once it returns true the handler owns the
// candidate: Handle either returns the move(s) or an empty slice meaning the
// move is illegal for that handler's reason. The Generator does not fall
// through to later handlers in that case.
type SpecialMoveHandler interface {
	CanHandle(b *Board, p *Piece, from, to Square) bool
	Handle(s *PositionState, p *Piece, from, to Square) []*Move
}

// DefaultHandlers is the standard dispatch order: castling, en passant, then
// promotion to every kind.
func DefaultHandlers() []SpecialMoveHandler {
	return []SpecialMoveHandler{
		NewCastlingHandler(),
		NewEnPassantHandler(),
		NewPromotionHandler(AllPromotions{}),
	}
}
