package chess

// PromotionStrategy decides which kinds a pawn on the far rank may become.
type PromotionStrategy interface {
	Choices(c Color) []PieceType
}

// QueenPromotion always promotes to a queen.
type QueenPromotion struct{}

func (QueenPromotion) Choices(Color) []PieceType {
	return []PieceType{Queen}
}

// ChosenPromotion promotes to a kind picked by the caller.
type ChosenPromotion struct {
	Type PieceType
}

func (c ChosenPromotion) Choices(Color) []PieceType {
	return []PieceType{c.Type}
}

// AllPromotions offers queen, rook, bishop and knight as separate moves.
type AllPromotions struct{}

func (AllPromotions) Choices(Color) []PieceType {
	return []PieceType{Queen, Rook, Bishop, Knight}
}

// PromotionHandler builds promotion moves for pawns reaching the far rank.
type PromotionHandler struct {
	strategy PromotionStrategy
}

// NewPromotionHandler uses QueenPromotion when strategy is nil.
func NewPromotionHandler(strategy PromotionStrategy) *PromotionHandler {
	if strategy == nil {
		strategy = QueenPromotion{}
	}
	return &PromotionHandler{strategy: strategy}
}

func (h *PromotionHandler) CanHandle(_ *Board, p *Piece, _, to Square) bool {
	return p.Type == Pawn && to.row == p.Color.promotionRow()
}

func (h *PromotionHandler) Handle(s *PositionState, p *Piece, from, to Square) []*Move {
	captured := s.Board.PieceAt(to)
	if captured != nil && (captured.Color == p.Color || captured.Type == King) {
		return nil
	}
	var moves []*Move
	for _, t := range h.strategy.Choices(p.Color) {
		if t == Pawn || t == King {
			continue
		}
		moves = append(moves, PromotionMove(from, to, p, captured, t))
	}
	return moves
}
