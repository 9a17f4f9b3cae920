package chess

// SquaresAttackedBy is the union of the attack shapes of every piece of color
// c. It answers "can reach", not "may legally move there".
func SquaresAttackedBy(b *Board, c Color) SquareSet {
	var set SquareSet
	for _, p := range b.Pieces(c) {
		for _, sq := range p.Attacks(b) {
			set.Add(sq)
		}
	}
	return set
}

// IsSquareAttacked reports whether any piece of color attacker reaches sq.
func IsSquareAttacked(b *Board, sq Square, attacker Color) bool {
	for _, p := range b.Pieces(attacker) {
		for _, target := range p.Attacks(b) {
			if target == sq {
				return true
			}
		}
	}
	return false
}

// kingAttacked reports whether c's king stands on a square attacked by the
// other side. A missing king is an invariant violation.
func kingAttacked(b *Board, c Color) bool {
	return IsSquareAttacked(b, b.FindKing(c), c.Opposite())
}
