package service

import (
	"errors"
	"testing"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/ws"
)

func TestGameServiceLifecycle(t *testing.T) {
	gs := NewGameService(NewGameManager())

	gameID, err := gs.CreateGame()
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if color, err := gs.JoinGame(gameID, "alice"); err != nil || color != model.White {
		t.Fatalf("JoinGame alice: %v %v", color, err)
	}
	if color, err := gs.JoinGame(gameID, "bob"); err != nil || color != model.Black {
		t.Fatalf("JoinGame bob: %v %v", color, err)
	}

	state, err := gs.HandleMove(gameID, "alice", ws.MovePayload{From: "e2", To: "e4"})
	if err != nil {
		t.Fatalf("HandleMove: %v", err)
	}
	if state.ToMove != model.Black {
		t.Fatalf("to move = %s", state.ToMove)
	}

	dests, err := gs.LegalDestinations(gameID, "e7")
	if err != nil {
		t.Fatalf("LegalDestinations: %v", err)
	}
	if dests.Len() != 2 {
		t.Fatalf("pawn e7 has %d destinations, want 2", dests.Len())
	}

	if _, err := gs.Undo(gameID, "bob"); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	state, err = gs.Redo(gameID, "bob")
	if err != nil {
		t.Fatalf("Redo: %v", err)
	}
	if state.Index != 1 {
		t.Fatalf("index after redo = %d", state.Index)
	}
	if _, err := gs.JumpTo(gameID, "bob", 0); err != nil {
		t.Fatalf("JumpTo: %v", err)
	}
	state, err = gs.GetGameState(gameID)
	if err != nil {
		t.Fatalf("GetGameState: %v", err)
	}
	if state.Index != 0 || !state.CanRedo {
		t.Fatalf("unexpected state: %+v", state)
	}
}

func TestGameServiceErrors(t *testing.T) {
	gm := NewGameManager()
	gs := NewGameService(gm)

	if _, err := gs.GetGameState("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("GetGameState: got %v, want ErrGameNotFound", err)
	}
	if _, err := gs.JoinGame("missing", "alice"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("JoinGame: got %v, want ErrGameNotFound", err)
	}
	if err := gm.CreateGame("g1"); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	if err := gm.CreateGame("g1"); !errors.Is(err, ErrGameExists) {
		t.Fatalf("duplicate CreateGame: got %v, want ErrGameExists", err)
	}
	gs.JoinGame("g1", "alice")
	if _, err := gs.HandleMove("g1", "alice", ws.MovePayload{From: "e2", To: "z9"}); !errors.Is(err, model.ErrInvalidSquare) {
		t.Fatalf("bad label: got %v, want ErrInvalidSquare", err)
	}
	if _, err := gs.LegalDestinations("g1", "e"); !errors.Is(err, model.ErrInvalidSquare) {
		t.Fatalf("bad label: got %v, want ErrInvalidSquare", err)
	}
}
