package model

import "testing"

func mv(t *testing.T, s string) Move {
	t.Helper()
	if len(s) != 4 {
		t.Fatalf("bad move literal %q", s)
	}
	return Move{From: sq(t, s[:2]), To: sq(t, s[2:])}
}

// play appends each move after checking it is legal for the side to move.
func play(t *testing.T, h *MoveHistory, moves ...string) {
	t.Helper()
	for _, s := range moves {
		m := mv(t, s)
		b := h.Reconstruct()
		p, ok := b.At(m.From)
		if !ok || p.Color != h.ColorToMove() {
			t.Fatalf("%s: no %s piece on %s", s, h.ColorToMove(), m.From)
		}
		if !ValidateMove(&b, m.From, m.To) {
			t.Fatalf("%s rejected as illegal", s)
		}
		h.Append(m)
	}
}

func TestEvaluateCheckmate(t *testing.T) {
	tests := []struct {
		name   string
		moves  []string
		toMove Color
		winner Color
	}{
		{"black mated", []string{"e2e4", "g7g5", "d2d4", "f7f6", "d1h5"}, Black, White},
		{"fool's mate", []string{"f2f3", "e7e5", "g2g4", "d8h4"}, White, Black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewMoveHistory()
			play(t, h, tt.moves...)
			if h.ColorToMove() != tt.toMove {
				t.Fatalf("to move = %s, want %s", h.ColorToMove(), tt.toMove)
			}
			b := h.Reconstruct()
			outcome, err := Evaluate(&b, tt.toMove)
			if err != nil {
				t.Fatalf("Evaluate: %v", err)
			}
			if outcome.Status != StatusWin || outcome.Winner == nil || *outcome.Winner != tt.winner {
				t.Fatalf("outcome = %+v, want win for %s", outcome, tt.winner)
			}
			if outcome.Reason != ReasonCheckmate {
				t.Fatalf("reason = %q, want %q", outcome.Reason, ReasonCheckmate)
			}
		})
	}
}

func TestEvaluateStalemate(t *testing.T) {
	b := boardFromRows(t,
		".......k",
		".....Q..",
		"......K.",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	outcome, err := Evaluate(&b, Black)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if outcome.Status != StatusDraw || outcome.Winner != nil {
		t.Fatalf("outcome = %+v, want draw", outcome)
	}
	if outcome.Message() != "Draw" {
		t.Fatalf("message = %q", outcome.Message())
	}

	// the same position with White to move carries on
	outcome, err = Evaluate(&b, White)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if outcome.Over() {
		t.Fatalf("white to move should continue, got %+v", outcome)
	}
}

func TestEvaluateOngoing(t *testing.T) {
	b := NewBoard()
	outcome, err := Evaluate(&b, White)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if outcome.Status != StatusOngoing || outcome.Message() != "" {
		t.Fatalf("outcome = %+v, want ongoing", outcome)
	}
}

func TestOutcomeMessage(t *testing.T) {
	white, black := White, Black
	if got := (Outcome{Status: StatusWin, Winner: &white}).Message(); got != "White wins!" {
		t.Errorf("white win message = %q", got)
	}
	if got := (Outcome{Status: StatusWin, Winner: &black}).Message(); got != "Black wins!" {
		t.Errorf("black win message = %q", got)
	}
}
