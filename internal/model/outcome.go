package model

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusDraw    Status = "draw"
	StatusWin     Status = "win"
)

const (
	ReasonCheckmate = "checkmate"
	ReasonStalemate = "stalemate"
)

// Outcome is the verdict on a position. Winner is set only for StatusWin.
type Outcome struct {
	Status Status `json:"status"`
	Winner *Color `json:"winner"`
	Reason string `json:"reason,omitempty"`
}

func (o Outcome) Over() bool {
	return o.Status != StatusOngoing
}

// Message is the announcement shown when the game ends.
func (o Outcome) Message() string {
	switch o.Status {
	case StatusWin:
		if *o.Winner == White {
			return "White wins!"
		}
		return "Black wins!"
	case StatusDraw:
		return "Draw"
	}
	return ""
}

// Evaluate decides whether toMove can continue. With no legal move, an
// attacked king is checkmate and an unattacked one stalemate; no other draw
// is recognised.
func Evaluate(b *Board, toMove Color) (Outcome, error) {
	for _, from := range b.Occupied(toMove) {
		dests, err := LegalDestinations(b, from)
		if err != nil {
			return Outcome{}, err
		}
		if dests.Len() > 0 {
			return Outcome{Status: StatusOngoing}, nil
		}
	}

	check, err := IsAttacked(b, toMove)
	if err != nil {
		return Outcome{}, err
	}
	if check {
		winner := toMove.Opponent()
		return Outcome{Status: StatusWin, Winner: &winner, Reason: ReasonCheckmate}, nil
	}
	return Outcome{Status: StatusDraw, Reason: ReasonStalemate}, nil
}
