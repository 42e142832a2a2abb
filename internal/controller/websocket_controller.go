package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	// Register this connection with the game
	if err := wsc.gameService.RegisterConnection(gameID, playerID, c); err != nil {
		log.Warnf("game %s: register connection for %s: %v", gameID, playerID, err)
		if errors.Is(err, model.ErrDuplicateConnection) {
			return // already closed
		}
		if err := c.WriteJSON(ws.ErrorMessage(err.Error())); err != nil {
			log.Debugf("game %s: send register error to %s: %v", gameID, playerID, err)
		}
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("game %s: read from %s: %v", gameID, playerID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Debugf("game %s: parse message from %s: %v", gameID, playerID, err)
			wsc.sendError(gameID, c, "malformed message")
			continue
		}

		// Successful actions answer through the game's broadcast
		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			log.Debugf("game %s: handle %s from %s: %v", gameID, msg.Type, playerID, err)
			wsc.sendError(gameID, c, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID, c)
}

// Handle different types of incoming messages
func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	var err error
	switch msg.Type {
	case ws.MessageTypeMove:
		var move ws.MovePayload
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		_, err = wsc.gameService.HandleMove(gameID, playerID, move)
	case ws.MessageTypeUndo:
		_, err = wsc.gameService.Undo(gameID, playerID)
	case ws.MessageTypeRedo:
		_, err = wsc.gameService.Redo(gameID, playerID)
	case ws.MessageTypeJump:
		var jump ws.JumpPayload
		if err := json.Unmarshal(msg.Payload, &jump); err != nil {
			return err
		}
		_, err = wsc.gameService.JumpTo(gameID, playerID, jump.Index)
	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
	return err
}

func (wsc *WebSocketController) sendError(gameID string, c *websocket.Conn, errorMsg string) {
	if err := wsc.gameService.Send(gameID, c, ws.ErrorMessage(errorMsg)); err != nil {
		log.Warnf("game %s: send error: %v", gameID, err)
	}
}
