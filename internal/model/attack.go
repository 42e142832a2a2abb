package model

// IsAttacked reports whether the king of color c is among the pseudo-legal
// destinations of any opposing piece. The board must hold exactly one king
// of color c.
func IsAttacked(b *Board, c Color) (bool, error) {
	king, err := b.KingSquare(c)
	if err != nil {
		return false, err
	}
	for _, from := range b.Occupied(c.Opponent()) {
		if pseudoMoves(b, from, *b.occupant(from)).Contains(king) {
			return true, nil
		}
	}
	return false, nil
}
