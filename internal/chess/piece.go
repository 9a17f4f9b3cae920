package chess

import (
	"fmt"
	"strings"
)

type PieceType int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceNames = [...]string{"pawn", "knight", "bishop", "rook", "queen", "king"}
var pieceLetters = [...]string{"p", "n", "b", "r", "q", "k"}

func (t PieceType) String() string {
	return pieceNames[t]
}

// Letter is the lower-case coordinate-notation letter of the kind.
func (t PieceType) Letter() string {
	return pieceLetters[t]
}

func (t PieceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *PieceType) UnmarshalText(text []byte) error {
	parsed, ok := ParsePieceType(string(text))
	if !ok {
		return fmt.Errorf("invalid piece type %q", text)
	}
	*t = parsed
	return nil
}

// ParsePieceType accepts a full name ("queen") or a letter ("q", "Q").
func ParsePieceType(s string) (PieceType, bool) {
	s = strings.ToLower(s)
	for i := range pieceNames {
		if s == pieceNames[i] || s == pieceLetters[i] {
			return PieceType(i), true
		}
	}
	return Pawn, false
}

func (t PieceType) isMinor() bool {
	return t == Knight || t == Bishop
}

// Piece is a single man on the board. Two pieces of the same kind and color
// are still different pieces; the board stores pointers.
type Piece struct {
	Type  PieceType
	Color Color
	pos   Square
}

func NewPiece(t PieceType, c Color) *Piece {
	return &Piece{Type: t, Color: c}
}

// Square is where the piece currently stands. It is maintained by Board.
func (p *Piece) Square() Square {
	return p.pos
}

func (p *Piece) Clone() *Piece {
	cp := *p
	return &cp
}

// Equal compares kind, color and position. It is meant for assertions.
func (p *Piece) Equal(o *Piece) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.Type == o.Type && p.Color == o.Color && p.pos == o.pos
}

// Symbol is the FEN-style letter: upper case for White.
func (p *Piece) Symbol() string {
	if p.Color == White {
		return strings.ToUpper(p.Type.Letter())
	}
	return p.Type.Letter()
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s@%s", p.Color, p.Type, p.pos)
}

type direction struct {
	dr, dc int
}

var (
	rookDirs    = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	bishopDirs  = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirs   = append(append([]direction{}, rookDirs...), bishopDirs...)
	knightJumps = []direction{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	kingSteps   = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// shape computes squares for one piece kind on a rule-blind board.
type shape func(b *Board, p *Piece) []Square

var moveShapes = [...]shape{
	Pawn:   pawnPushesAndCaptures,
	Knight: leaper(knightJumps, false),
	Bishop: slider(bishopDirs, false),
	Rook:   slider(rookDirs, false),
	Queen:  slider(queenDirs, false),
	King:   leaper(kingSteps, false),
}

// Attack shapes include squares held by the attacker's own pieces: those are
// defended, which matters when the enemy king considers capturing there.
var attackShapes = [...]shape{
	Pawn:   pawnAttacks,
	Knight: leaper(knightJumps, true),
	Bishop: slider(bishopDirs, true),
	Rook:   slider(rookDirs, true),
	Queen:  slider(queenDirs, true),
	King:   leaper(kingSteps, true),
}

// Destinations returns the candidate destination squares of p's ordinary
// movement shape: blocking and capture aware, check blind. Castling and en
// passant destinations are proposed by the Generator, not here.
func (p *Piece) Destinations(b *Board) []Square {
	return moveShapes[p.Type](b, p)
}

// Attacks returns the squares p threatens. Pawns threaten both forward
// diagonals whether or not anything stands there.
func (p *Piece) Attacks(b *Board) []Square {
	return attackShapes[p.Type](b, p)
}

// slider walks each ray until the edge or the first occupant. The occupant is
// included if it is an enemy, or if defended is set.
func slider(dirs []direction, defended bool) shape {
	return func(b *Board, p *Piece) []Square {
		var out []Square
		for _, d := range dirs {
			sq, ok := p.pos.offset(d.dr, d.dc)
			for ok {
				occupant := b.PieceAt(sq)
				if occupant == nil {
					out = append(out, sq)
				} else {
					if defended || occupant.Color != p.Color {
						out = append(out, sq)
					}
					break
				}
				sq, ok = sq.offset(d.dr, d.dc)
			}
		}
		return out
	}
}

func leaper(jumps []direction, defended bool) shape {
	return func(b *Board, p *Piece) []Square {
		var out []Square
		for _, d := range jumps {
			sq, ok := p.pos.offset(d.dr, d.dc)
			if !ok {
				continue
			}
			if occupant := b.PieceAt(sq); defended || occupant == nil || occupant.Color != p.Color {
				out = append(out, sq)
			}
		}
		return out
	}
}

func pawnPushesAndCaptures(b *Board, p *Piece) []Square {
	var out []Square
	fwd := p.Color.forward()
	if one, ok := p.pos.offset(fwd, 0); ok && b.IsEmpty(one) {
		out = append(out, one)
		if p.pos.row == p.Color.pawnStartRow() {
			if two, ok := p.pos.offset(2*fwd, 0); ok && b.IsEmpty(two) {
				out = append(out, two)
			}
		}
	}
	for _, dc := range []int{-1, 1} {
		sq, ok := p.pos.offset(fwd, dc)
		if !ok {
			continue
		}
		if occupant := b.PieceAt(sq); occupant != nil && occupant.Color != p.Color {
			out = append(out, sq)
		}
	}
	return out
}

func pawnAttacks(_ *Board, p *Piece) []Square {
	var out []Square
	for _, dc := range []int{-1, 1} {
		if sq, ok := p.pos.offset(p.Color.forward(), dc); ok {
			out = append(out, sq)
		}
	}
	return out
}
