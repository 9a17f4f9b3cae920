package chess

// History records the moves of a game and a snapshot of the position before
// the first move and after every move.
type History struct {
	moves  []*Move
	states []*PositionState
}

func NewHistory(initial *PositionState) *History {
	return &History{states: []*PositionState{initial.withoutHistory()}}
}

// Record stores m and a copy of s, the position m produced. Snapshots do
// not carry the move list; Moves has it.
func (h *History) Record(s *PositionState, m *Move) {
	h.moves = append(h.moves, m)
	h.states = append(h.states, s.withoutHistory())
}

func (h *History) Moves() []*Move {
	return h.moves
}

// Positions starts with the initial position; the last entry is the current one.
func (h *History) Positions() []*PositionState {
	return h.states
}

func (h *History) Len() int {
	return len(h.moves)
}
