package model

type Player struct {
	ID    string `json:"id"`
	Color Color  `json:"color"`
}

// Players holds the two seats of a game. A player who joins twice holds both
// seats and plays both sides from one client.
type Players struct {
	White *Player `json:"white"`
	Black *Player `json:"black"`
}

func (p Players) seat(c Color) *Player {
	if c == White {
		return p.White
	}
	return p.Black
}

func (p Players) holds(playerID string, c Color) bool {
	seat := p.seat(c)
	return seat != nil && seat.ID == playerID
}

func (p Players) has(playerID string) bool {
	return p.holds(playerID, White) || p.holds(playerID, Black)
}

func (p Players) full() bool {
	return p.White != nil && p.Black != nil
}
