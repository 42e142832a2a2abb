package model

// LegalDestinations returns the squares the piece on s may legally move to.
func LegalDestinations(b *Board, s Square) (SquareSet, error) {
	return Generate(b, s, true)
}

// ValidateMove reports whether moving the piece on from to to is legal. The
// resulting position is checked again right before the move is accepted.
func ValidateMove(b *Board, from, to Square) bool {
	dests, err := LegalDestinations(b, from)
	if err != nil || !dests.Contains(to) {
		return false
	}
	mover, _ := b.At(from)
	next := b.Apply(Move{From: from, To: to})
	attacked, err := IsAttacked(&next, mover.Color)
	return err == nil && !attacked
}

// LegalMoves lists every legal move of color c.
func LegalMoves(b *Board, c Color) ([]Move, error) {
	var moves []Move
	for _, from := range b.Occupied(c) {
		dests, err := LegalDestinations(b, from)
		if err != nil {
			return nil, err
		}
		for _, to := range dests.Squares() {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves, nil
}
