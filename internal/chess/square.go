package chess

import "fmt"

// Square is an immutable (row, column) pair. Row 0 is rank 1 and column 0 is
// the a-file, so a1 is the zero value.
type Square struct {
	row, col int
}

func validCoords(row, col int) bool {
	return row >= 0 && row < 8 && col >= 0 && col < 8
}

// NewSquare returns the square at (row, col), or false if either coordinate
// is off the board.
func NewSquare(row, col int) (Square, bool) {
	if !validCoords(row, col) {
		return Square{}, false
	}
	return Square{row: row, col: col}, true
}

// MustSquare is NewSquare for coordinates the caller has already bounded.
// It panics with an *InvariantError otherwise.
func MustSquare(row, col int) Square {
	sq, ok := NewSquare(row, col)
	if !ok {
		invariant(ErrInvalidSquare, "row %d col %d", row, col)
	}
	return sq
}

// ParseSquare converts algebraic notation ("e4") to a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return Square{row: int(rank - '1'), col: int(file - 'a')}, nil
}

// MustParseSquare is ParseSquare for literals known to be valid.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		invariant(ErrInvalidSquare, "%q", s)
	}
	return sq
}

func (s Square) Row() int { return s.row }
func (s Square) Col() int { return s.col }

func (s Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+s.col, s.row+1)
}

func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

func (s Square) offset(dr, dc int) (Square, bool) {
	return NewSquare(s.row+dr, s.col+dc)
}

func (s Square) index() int {
	return s.row*8 + s.col
}

// SquareSet is a set of squares stored as a 64-bit mask.
type SquareSet uint64

func (ss SquareSet) Has(sq Square) bool {
	return ss&(1<<uint(sq.index())) != 0
}

func (ss *SquareSet) Add(sq Square) {
	*ss |= 1 << uint(sq.index())
}

func (ss SquareSet) Len() int {
	n := 0
	for v := uint64(ss); v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Squares lists the members in a1, b1, ... h8 order.
func (ss SquareSet) Squares() []Square {
	out := make([]Square, 0, ss.Len())
	for i := 0; i < 64; i++ {
		if ss&(1<<uint(i)) != 0 {
			out = append(out, Square{row: i / 8, col: i % 8})
		}
	}
	return out
}
