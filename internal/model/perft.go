package model

// Perft counts the leaf positions of the legal move tree below b.
func Perft(b *Board, toMove Color, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	moves, err := LegalMoves(b, toMove)
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(moves)), nil
	}
	var nodes uint64
	for _, m := range moves {
		next := b.Apply(m)
		n, err := Perft(&next, toMove.Opponent(), depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// PerftDivide reports the perft count below each root move.
func PerftDivide(b *Board, toMove Color, depth int) (map[Move]uint64, error) {
	moves, err := LegalMoves(b, toMove)
	if err != nil {
		return nil, err
	}
	div := make(map[Move]uint64, len(moves))
	for _, m := range moves {
		next := b.Apply(m)
		n, err := Perft(&next, toMove.Opponent(), depth-1)
		if err != nil {
			return nil, err
		}
		div[m] = n
	}
	return div, nil
}
