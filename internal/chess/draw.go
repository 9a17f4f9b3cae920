package chess

// FiftyMovePlies is the half-move clock value that triggers the fifty-move rule.
const FiftyMovePlies = 100

// DrawRule inspects a position and the positions seen so far.
type DrawRule interface {
	Check(s *PositionState, history []*PositionState) (GameStatus, bool)
}

type FiftyMoveRule struct{}

func (FiftyMoveRule) Check(s *PositionState, _ []*PositionState) (GameStatus, bool) {
	return StatusFiftyMove, s.HalfMoveClock >= FiftyMovePlies
}

// ThreefoldRepetitionRule counts how often s occurs in history. history is
// expected to include the current position.
type ThreefoldRepetitionRule struct{}

func (ThreefoldRepetitionRule) Check(s *PositionState, history []*PositionState) (GameStatus, bool) {
	key := s.Key()
	seen := 0
	for _, past := range history {
		if past.Key() == key {
			seen++
		}
	}
	return StatusThreefoldRepetition, seen >= 3
}

// InsufficientMaterialRule fires on bare kings, or kings plus one minor piece.
type InsufficientMaterialRule struct{}

func (InsufficientMaterialRule) Check(s *PositionState, _ []*PositionState) (GameStatus, bool) {
	pieces := s.Board.AllPieces()
	minors := 0
	for _, p := range pieces {
		switch {
		case p.Type == King:
		case p.Type.isMinor():
			minors++
		default:
			return StatusInsufficientMaterial, false
		}
	}
	onlyKings := minors == 0
	return StatusInsufficientMaterial, onlyKings || (len(pieces) == 3 && minors == 1)
}

// DrawEngine applies its rules in order; the first that fires wins.
type DrawEngine struct {
	rules []DrawRule
}

// NewDrawEngine defaults to fifty-move, threefold repetition and insufficient
// material, in that order.
func NewDrawEngine(rules ...DrawRule) *DrawEngine {
	if len(rules) == 0 {
		rules = []DrawRule{FiftyMoveRule{}, ThreefoldRepetitionRule{}, InsufficientMaterialRule{}}
	}
	return &DrawEngine{rules: rules}
}

func (e *DrawEngine) CheckDraw(s *PositionState, history []*PositionState) GameStatus {
	for _, rule := range e.rules {
		if status, ok := rule.Check(s, history); ok {
			return status
		}
	}
	return StatusInProgress
}

var defaultDrawEngine = NewDrawEngine()

func CheckDraw(s *PositionState, history []*PositionState) GameStatus {
	return defaultDrawEngine.CheckDraw(s, history)
}
