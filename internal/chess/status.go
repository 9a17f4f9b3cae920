package chess

import "fmt"

type GameStatus int

const (
	StatusInProgress GameStatus = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
	StatusFiftyMove
	StatusThreefoldRepetition
	StatusInsufficientMaterial
	StatusResignation
)

var statusNames = [...]string{
	"in_progress",
	"check",
	"checkmate",
	"stalemate",
	"fifty_move_rule",
	"threefold_repetition",
	"insufficient_material",
	"resignation",
}

func (st GameStatus) String() string {
	if int(st) < len(statusNames) {
		return statusNames[st]
	}
	return fmt.Sprintf("GameStatus(%d)", int(st))
}

func (st GameStatus) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}

// IsTerminal reports whether no further moves may be played.
func (st GameStatus) IsTerminal() bool {
	return st != StatusInProgress && st != StatusCheck
}

func (st GameStatus) IsDraw() bool {
	switch st {
	case StatusStalemate, StatusFiftyMove, StatusThreefoldRepetition, StatusInsufficientMaterial:
		return true
	}
	return false
}

// Evaluation is a status plus the winner when there is one.
type Evaluation struct {
	Status    GameStatus
	Winner    Color
	HasWinner bool
}

func (e Evaluation) String() string {
	if e.HasWinner {
		return fmt.Sprintf("%s (%s wins)", e.Status, e.Winner)
	}
	return e.Status.String()
}

// IsInCheck reports whether c's king is on a square the other side attacks.
func IsInCheck(s *PositionState, c Color) bool {
	return kingAttacked(s.Board, c)
}

// Evaluate classifies the position from c's point of view: checkmate (the
// other color wins) or stalemate when c has no legal move, check when c is
// attacked but can move, in progress otherwise.
func Evaluate(s *PositionState, c Color) Evaluation {
	inCheck := IsInCheck(s, c)
	if !HasLegalMove(s, c) {
		if inCheck {
			return Evaluation{Status: StatusCheckmate, Winner: c.Opposite(), HasWinner: true}
		}
		return Evaluation{Status: StatusStalemate}
	}
	if inCheck {
		return Evaluation{Status: StatusCheck}
	}
	return Evaluation{Status: StatusInProgress}
}

// Outcome is the status a game driver should act on after a move. When the
// side to move has no legal move the evaluator decides; otherwise the draw
// rules are consulted, and check is reported if none applies.
func Outcome(s *PositionState, history []*PositionState) Evaluation {
	eval := Evaluate(s, s.Turn)
	if eval.Status.IsTerminal() {
		return eval
	}
	if draw := CheckDraw(s, history); draw != StatusInProgress {
		return Evaluation{Status: draw}
	}
	return eval
}
