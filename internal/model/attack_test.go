package model

import (
	"errors"
	"testing"
)

func TestKingCannotStayOnAttackedRank(t *testing.T) {
	// black rook f4 defended by the black king on g5
	b := boardFromRows(t,
		"........",
		"........",
		"........",
		"......k.",
		"....Kr..",
		"........",
		"........",
		"........",
	)
	king := sq(t, "e4")

	pseudo, err := Generate(&b, king, false)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !pseudo.Contains(sq(t, "d4")) || !pseudo.Contains(sq(t, "f4")) {
		t.Fatalf("pseudo-legal king moves %v should include d4 and f4", labels(pseudo))
	}

	legal, err := LegalDestinations(&b, king)
	if err != nil {
		t.Fatalf("LegalDestinations: %v", err)
	}
	for _, s := range legal.Squares() {
		if s.Row == king.Row {
			t.Errorf("king may move to %s on the attacked rank", s)
		}
	}
	if !sameLabels(legal, "d3", "d5", "e3", "e5") {
		t.Fatalf("legal king moves = %v, want [d3 d5 e3 e5]", labels(legal))
	}
}

func TestPinnedPieceMayOnlyMoveAlongPin(t *testing.T) {
	b := boardFromRows(t,
		"....r..k",
		"........",
		"........",
		"........",
		"....R...",
		"........",
		"........",
		"....K...",
	)
	legal, err := LegalDestinations(&b, sq(t, "e4"))
	if err != nil {
		t.Fatalf("LegalDestinations: %v", err)
	}
	if !sameLabels(legal, "e2", "e3", "e5", "e6", "e7", "e8") {
		t.Fatalf("pinned rook moves = %v", labels(legal))
	}
}

func TestIsAttacked(t *testing.T) {
	b := NewBoard()
	for _, c := range []Color{White, Black} {
		attacked, err := IsAttacked(&b, c)
		if err != nil {
			t.Fatalf("IsAttacked(%s): %v", c, err)
		}
		if attacked {
			t.Fatalf("%s attacked in the starting position", c)
		}
	}

	check := boardFromRows(t,
		"....k...",
		"........",
		"........",
		".B......",
		"........",
		"........",
		"........",
		"....K...",
	)
	attacked, err := IsAttacked(&check, Black)
	if err != nil {
		t.Fatalf("IsAttacked: %v", err)
	}
	if !attacked {
		t.Fatalf("expected bishop b5 to attack e8")
	}
}

func TestIsAttackedMissingKing(t *testing.T) {
	b := boardFromRows(t,
		"....k...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R.......",
	)
	if _, err := IsAttacked(&b, White); !errors.Is(err, ErrMissingKing) {
		t.Fatalf("got %v, want ErrMissingKing", err)
	}
	if _, err := Generate(&b, sq(t, "a1"), true); !errors.Is(err, ErrMissingKing) {
		t.Fatalf("self-check filter without a king: got %v, want ErrMissingKing", err)
	}
}

func TestValidateMove(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		from, to string
		want     bool
	}{
		{"e2", "e4", true},
		{"e2", "e5", false},
		{"g1", "f3", true},
		{"g1", "g3", false},
		{"e7", "e5", true}, // turn order is the caller's concern
		{"e4", "e5", false},
		{"d1", "d2", false},
	}
	for _, tt := range tests {
		if got := ValidateMove(&b, sq(t, tt.from), sq(t, tt.to)); got != tt.want {
			t.Errorf("ValidateMove(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
	if ValidateMove(&b, sq(t, "e2"), Square{Row: -1, Col: 4}) {
		t.Errorf("ValidateMove accepted an off-board destination")
	}
	if ValidateMove(&b, Square{Row: 9, Col: 9}, sq(t, "e4")) {
		t.Errorf("ValidateMove accepted an off-board source")
	}
}

func TestLegalMovesFromStart(t *testing.T) {
	b := NewBoard()
	for _, c := range []Color{White, Black} {
		moves, err := LegalMoves(&b, c)
		if err != nil {
			t.Fatalf("LegalMoves(%s): %v", c, err)
		}
		if len(moves) != 20 {
			t.Fatalf("%s has %d moves, want 20", c, len(moves))
		}
	}
}
