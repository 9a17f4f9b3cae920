package chess

import "testing"

func TestEvaluateFoolsMate(t *testing.T) {
	s := NewStandardPosition()
	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		play(t, s, m)
	}
	eval := Evaluate(s, White)
	if eval.Status != StatusCheckmate || !eval.HasWinner || eval.Winner != Black {
		t.Fatalf("evaluation = %s, want checkmate for black", eval)
	}
	if !eval.Status.IsTerminal() || eval.Status.IsDraw() {
		t.Fatalf("checkmate should be terminal and not a draw")
	}
	if len(LegalMoves(s, White)) != 0 {
		t.Fatalf("mated side has moves")
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		turn  Color
		specs []string
		want  GameStatus
	}{
		{"stalemate", Black, []string{"Kf7", "Qg6", "kh8"}, StatusStalemate},
		{"back rank mate", Black, []string{"Kg1", "Ra8", "kg8", "pf7", "pg7", "ph7"}, StatusCheckmate},
		{"check with escape", Black, []string{"Ke1", "Re7", "ke8"}, StatusCheck},
		{"quiet", White, []string{"Ke1", "ke8", "Pa2"}, StatusInProgress},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := setup(t, tt.turn, tt.specs...)
			if got := Evaluate(s, tt.turn); got.Status != tt.want {
				t.Fatalf("Evaluate = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOutcomePrefersMateOverDraw(t *testing.T) {
	s := setup(t, Black, "Kf7", "Qg6", "kh8")
	s.HalfMoveClock = 120
	if got := Outcome(s, nil); got.Status != StatusStalemate {
		t.Fatalf("Outcome = %s, want stalemate", got)
	}
	s = setup(t, White, "Ke1", "Re2", "ke8")
	s.HalfMoveClock = FiftyMovePlies
	if got := Outcome(s, nil); got.Status != StatusFiftyMove {
		t.Fatalf("Outcome = %s, want fifty-move", got)
	}
}

func TestGameStatusStrings(t *testing.T) {
	if StatusThreefoldRepetition.String() != "threefold_repetition" {
		t.Fatalf("got %q", StatusThreefoldRepetition.String())
	}
	if !StatusInsufficientMaterial.IsDraw() || StatusCheck.IsTerminal() {
		t.Fatalf("status classification wrong")
	}
}
