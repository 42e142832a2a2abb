package model

// Move relocates the piece on From to To. Captures and checks are derived by
// replaying moves against a board, never stored.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// AnnotatedMove is one entry of the move list.
type AnnotatedMove struct {
	Move      Move   `json:"move"`
	Notation  string `json:"notation"`
	Index     int    `json:"index"` // history index that displays the position after this move
	IsCurrent bool   `json:"isCurrent"`
}
