package chess

import "strings"

// PositionState is everything needed to continue a game from here. Copy it
// to try a move without touching the original.
type PositionState struct {
	Board         *Board
	Turn          Color
	Castling      CastlingRights
	HalfMoveClock int
	LastMove      *LastMove
	History       []*Move
}

// NewPositionState wraps b with White to move and every castling right set.
func NewPositionState(b *Board) *PositionState {
	return &PositionState{
		Board:    b,
		Turn:     White,
		Castling: AllCastlingRights(),
	}
}

// NewStandardPosition is the initial position of a game.
func NewStandardPosition() *PositionState {
	return NewPositionState(NewStandardBoard())
}

// Copy is a deep value copy. Moves in History are immutable and are shared.
func (s *PositionState) Copy() *PositionState {
	cp := s.withoutHistory()
	cp.History = append([]*Move(nil), s.History...)
	return cp
}

// withoutHistory copies everything but the move list. Legality simulation
// and position snapshots never read History.
func (s *PositionState) withoutHistory() *PositionState {
	cp := &PositionState{
		Board:         s.Board.Copy(),
		Turn:          s.Turn,
		Castling:      s.Castling,
		HalfMoveClock: s.HalfMoveClock,
	}
	if s.LastMove != nil {
		lm := *s.LastMove
		cp.LastMove = &lm
	}
	return cp
}

// EnPassantTarget is derived from the last move only, so it never outlives
// the ply after a two-square advance.
func (s *PositionState) EnPassantTarget() (Square, bool) {
	return s.LastMove.EnPassantTarget()
}

// Key identifies the position for repetition purposes: board contents, side
// to move, castling rights and en-passant target. The half-move clock and
// the move history are not part of it.
func (s *PositionState) Key() string {
	var sb strings.Builder
	sb.Grow(64 + 12)
	s.Board.writeKey(&sb)
	sb.WriteByte(' ')
	sb.WriteString(s.Turn.String()[:1])
	sb.WriteByte(' ')
	sb.WriteString(s.Castling.String())
	sb.WriteByte(' ')
	if ep, ok := s.EnPassantTarget(); ok {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
	return sb.String()
}

// Equal reports whether s and o are the same position under Key.
func (s *PositionState) Equal(o *PositionState) bool {
	return s.Key() == o.Key()
}
