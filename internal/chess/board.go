package chess

import "strings"

// Board owns an 8x8 grid of optional pieces. It knows nothing about rules.
// A piece's stored square always matches the cell holding it.
type Board struct {
	cells [8][8]*Piece
}

func NewEmptyBoard() *Board {
	return &Board{}
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewStandardBoard returns the initial chess position.
func NewStandardBoard() *Board {
	b := NewEmptyBoard()
	for col, t := range backRank {
		b.Place(MustSquare(0, col), NewPiece(t, White))
		b.Place(MustSquare(1, col), NewPiece(Pawn, White))
		b.Place(MustSquare(6, col), NewPiece(Pawn, Black))
		b.Place(MustSquare(7, col), NewPiece(t, Black))
	}
	return b
}

func (b *Board) PieceAt(sq Square) *Piece {
	return b.cells[sq.row][sq.col]
}

func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq) == nil
}

// Place puts p on sq, replacing whatever was there. If p currently stands on
// another square of this board, that square is vacated.
func (b *Board) Place(sq Square, p *Piece) {
	if p == nil {
		b.Remove(sq)
		return
	}
	if p.pos != sq && b.cells[p.pos.row][p.pos.col] == p {
		b.cells[p.pos.row][p.pos.col] = nil
	}
	b.cells[sq.row][sq.col] = p
	p.pos = sq
}

// Remove clears sq and returns the piece that stood there, if any.
func (b *Board) Remove(sq Square) *Piece {
	p := b.cells[sq.row][sq.col]
	b.cells[sq.row][sq.col] = nil
	return p
}

// AllPieces lists every piece in row-major order starting at a1.
func (b *Board) AllPieces() []*Piece {
	return b.filter(func(*Piece) bool { return true })
}

// Pieces lists the pieces of color c in row-major order starting at a1.
func (b *Board) Pieces(c Color) []*Piece {
	return b.filter(func(p *Piece) bool { return p.Color == c })
}

func (b *Board) filter(keep func(*Piece) bool) []*Piece {
	var out []*Piece
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.cells[row][col]; p != nil && keep(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// KingSquare reports where the king of color c stands.
func (b *Board) KingSquare(c Color) (Square, bool) {
	for _, p := range b.Pieces(c) {
		if p.Type == King {
			return p.pos, true
		}
	}
	return Square{}, false
}

// FindKing is KingSquare for positions that must contain the king. A missing
// king panics with an *InvariantError wrapping ErrKingNotFound.
func (b *Board) FindKing(c Color) Square {
	sq, ok := b.KingSquare(c)
	if !ok {
		invariant(ErrKingNotFound, "%s", c)
	}
	return sq
}

// Copy returns a board with cloned pieces. Nothing is shared with b.
func (b *Board) Copy() *Board {
	cp := &Board{}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.cells[row][col]; p != nil {
				cp.cells[row][col] = p.Clone()
			}
		}
	}
	return cp
}

// Equal compares kind and color on every square.
func (b *Board) Equal(o *Board) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p, q := b.cells[row][col], o.cells[row][col]
			if (p == nil) != (q == nil) {
				return false
			}
			if p != nil && (p.Type != q.Type || p.Color != q.Color) {
				return false
			}
		}
	}
	return true
}

// writeKey appends one character per square, a1 first.
func (b *Board) writeKey(sb *strings.Builder) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.cells[row][col]; p != nil {
				sb.WriteString(p.Symbol())
			} else {
				sb.WriteByte('.')
			}
		}
	}
}
