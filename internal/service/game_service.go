package service

import (
	"fmt"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Color, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

// LegalDestinations resolves a square label and lists its legal targets.
func (gs *GameService) LegalDestinations(gameID string, label string) (model.SquareSet, error) {
	square, err := model.ParseSquare(label)
	if err != nil {
		return 0, err
	}
	return gs.gameManager.LegalDestinations(gameID, square)
}

func (gs *GameService) HandleMove(gameID string, playerID string, move ws.MovePayload) (model.GameState, error) {
	from, err := model.ParseSquare(move.From)
	if err != nil {
		return model.GameState{}, err
	}
	to, err := model.ParseSquare(move.To)
	if err != nil {
		return model.GameState{}, err
	}

	return gs.gameManager.MakeMove(gameID, playerID, model.Move{From: from, To: to})
}

func (gs *GameService) Undo(gameID string, playerID string) (model.GameState, error) {
	return gs.gameManager.Undo(gameID, playerID)
}

func (gs *GameService) Redo(gameID string, playerID string) (model.GameState, error) {
	return gs.gameManager.Redo(gameID, playerID)
}

func (gs *GameService) JumpTo(gameID string, playerID string, index int) (model.GameState, error) {
	return gs.gameManager.JumpTo(gameID, playerID, index)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn *websocket.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn *websocket.Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}

func (gs *GameService) Send(gameID string, conn *websocket.Conn, msg ws.Message) error {
	return gs.gameManager.Send(gameID, conn, msg)
}
