package model

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
)

// The connections for a specific game
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
	writeMu     sync.Mutex // a websocket conn allows one writer at a time
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

// Game is one session: its move history, its seats and its observers. The
// displayed board is always rebuilt from the history.
type Game struct {
	ID          string
	mu          sync.Mutex
	broadcastMu sync.Mutex // taken before mu is released, so states go out in commit order
	history     *MoveHistory
	players     Players
	connections *GameConnections
}

// GameState is the snapshot sent to clients.
type GameState struct {
	Board    Board           `json:"board"`
	ToMove   Color           `json:"toMove"`
	IsCheck  bool            `json:"isCheck"`
	Outcome  Outcome         `json:"outcome"`
	Status   string          `json:"status"`
	MoveList []AnnotatedMove `json:"moveList"`
	Index    int             `json:"index"`
	CanUndo  bool            `json:"canUndo"`
	CanRedo  bool            `json:"canRedo"`
	LastMove *Move           `json:"lastMove"` // nil before the first move
	Players  Players         `json:"players"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		history:     NewMoveHistory(),
		connections: NewGameConnections(),
	}
}

// AddPlayer seats playerID in the first free seat, White first.
func (g *Game) AddPlayer(playerID string) (Color, error) {
	log.Debugf("adding player %s to game %s", playerID, g.ID)
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.players.White == nil {
		g.players.White = &Player{ID: playerID, Color: White}
		return White, nil
	}
	if g.players.Black == nil {
		g.players.Black = &Player{ID: playerID, Color: Black}
		return Black, nil
	}
	return White, ErrGameFull
}

func (g *Game) GetState() (GameState, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshot()
}

// LegalDestinations lists where the piece on s may move in the displayed
// position.
func (g *Game) LegalDestinations(s Square) (SquareSet, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	board := g.history.Reconstruct()
	return LegalDestinations(&board, s)
}

// MakeMove commits m for playerID if it is that player's turn and the move is
// legal in the displayed position. Redoable moves are discarded.
func (g *Game) MakeMove(playerID string, m Move) (GameState, error) {
	g.mu.Lock()
	state, err := g.makeMove(playerID, m)
	if err != nil {
		g.mu.Unlock()
		return GameState{}, err
	}

	g.publish(state)
	return state, nil
}

func (g *Game) makeMove(playerID string, m Move) (GameState, error) {
	log.Debugf("game %s: %s plays %s", g.ID, playerID, m)
	if !g.players.has(playerID) {
		return GameState{}, ErrNotAuthorized
	}

	board := g.history.Reconstruct()
	toMove := g.history.ColorToMove()
	outcome, err := Evaluate(&board, toMove)
	if err != nil {
		return GameState{}, err
	}
	if outcome.Over() {
		return GameState{}, ErrGameOver
	}

	piece, ok := board.At(m.From)
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ErrEmptySquare, m.From)
	}
	if piece.Color != toMove || !g.players.holds(playerID, toMove) {
		return GameState{}, ErrNotYourTurn
	}
	if !ValidateMove(&board, m.From, m.To) {
		return GameState{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	g.history.Append(m)
	return g.snapshot()
}

func (g *Game) Undo(playerID string) (GameState, error) {
	return g.navigate(playerID, func(h *MoveHistory) error {
		h.Undo()
		return nil
	})
}

func (g *Game) Redo(playerID string) (GameState, error) {
	return g.navigate(playerID, func(h *MoveHistory) error {
		h.Redo()
		return nil
	})
}

func (g *Game) JumpTo(playerID string, index int) (GameState, error) {
	return g.navigate(playerID, func(h *MoveHistory) error {
		return h.JumpTo(index)
	})
}

func (g *Game) navigate(playerID string, step func(*MoveHistory) error) (GameState, error) {
	g.mu.Lock()
	if !g.players.has(playerID) {
		g.mu.Unlock()
		return GameState{}, ErrNotAuthorized
	}
	if err := step(g.history); err != nil {
		g.mu.Unlock()
		return GameState{}, err
	}
	state, err := g.snapshot()
	if err != nil {
		g.mu.Unlock()
		return GameState{}, err
	}

	g.publish(state)
	return state, nil
}

// snapshot must be called with g.mu held.
func (g *Game) snapshot() (GameState, error) {
	board := g.history.Reconstruct()
	toMove := g.history.ColorToMove()

	check, err := IsAttacked(&board, toMove)
	if err != nil {
		return GameState{}, err
	}
	outcome, err := Evaluate(&board, toMove)
	if err != nil {
		return GameState{}, err
	}
	moveList, err := g.history.Annotate()
	if err != nil {
		return GameState{}, err
	}

	state := GameState{
		Board:    board,
		ToMove:   toMove,
		IsCheck:  check,
		Outcome:  outcome,
		Status:   outcome.Message(),
		MoveList: moveList,
		Index:    g.history.Index(),
		CanUndo:  g.history.CanUndo(),
		CanRedo:  g.history.CanRedo(),
		Players:  g.players,
	}
	if !outcome.Over() {
		state.Status = toMove.String() + " to move"
	}
	if i := g.history.Index(); i > 0 {
		last := g.history.moves[i-1]
		state.LastMove = &last
	}
	return state, nil
}

// RegisterConnection attaches conn as playerID's socket and sends it the
// current state. Seated players and, while a seat is free, spectators may
// connect. A second socket for the same player is closed.
func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	connID := fmt.Sprintf("%p", conn)
	log.Debugf("registering connection %s for player %s", connID, playerID)

	g.mu.Lock()
	if !g.players.has(playerID) && g.players.full() {
		g.mu.Unlock()
		return ErrNotAuthorized
	}
	state, err := g.snapshot()
	if err != nil {
		g.mu.Unlock()
		return err
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// If we already have a healthy connection, keep it and reject the new one
		g.connections.mu.Unlock()
		g.mu.Unlock()
		g.rejectDuplicate(conn)
		return ErrDuplicateConnection
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()
	log.Infof("game %s: player %s connected", g.ID, playerID)

	g.publish(state)
	return nil
}

func (g *Game) rejectDuplicate(conn *websocket.Conn) {
	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()

	if err := conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
	); err != nil {
		log.Debugf("game %s: close duplicate connection: %v", g.ID, err)
	}
	conn.Close()
}

// UnregisterConnection forgets playerID's socket if conn is still the
// registered one.
func (g *Game) UnregisterConnection(playerID string, conn *websocket.Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if current, exists := g.connections.connections[playerID]; exists && current == conn {
		delete(g.connections.connections, playerID)
		log.Infof("game %s: player %s disconnected", g.ID, playerID)
	}
}

// publish must be called with g.mu held and releases it. The broadcast lock
// is taken first, so a later commit cannot overtake this one on the wire.
func (g *Game) publish(state GameState) {
	g.broadcastMu.Lock()
	g.mu.Unlock()
	defer g.broadcastMu.Unlock()

	g.broadcastState(state)
}

func (g *Game) broadcastState(state GameState) {
	payload, err := json.Marshal(state)
	if err != nil {
		log.Errorf("game %s: marshal state: %v", g.ID, err)
		return
	}

	// Copy the connections so writes happen without holding the lock
	g.connections.mu.RLock()
	active := make(map[string]*websocket.Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		active[playerID] = conn
	}
	g.connections.mu.RUnlock()

	for playerID, conn := range active {
		if err := g.Send(conn, ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			log.Warnf("game %s: send state to %s: %v", g.ID, playerID, err)
			g.UnregisterConnection(playerID, conn)
		}
	}
}

// Send writes msg to conn, serialised with every other write of this game.
func (g *Game) Send(conn *websocket.Conn, msg ws.Message) error {
	g.connections.writeMu.Lock()
	defer g.connections.writeMu.Unlock()

	return conn.WriteJSON(msg)
}
