package model

import "fmt"

var (
	rookDirs   = []Square{{Row: 1, Col: 0}, {Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: -1}}
	bishopDirs = []Square{{Row: 1, Col: 1}, {Row: 1, Col: -1}, {Row: -1, Col: 1}, {Row: -1, Col: -1}}
	kingDirs   = append(append([]Square{}, rookDirs...), bishopDirs...)
	knightDirs = []Square{
		{Row: 1, Col: 2}, {Row: 1, Col: -2}, {Row: -1, Col: 2}, {Row: -1, Col: -2},
		{Row: 2, Col: 1}, {Row: 2, Col: -1}, {Row: -2, Col: 1}, {Row: -2, Col: -1},
	}
)

// Generate returns the destinations of the piece on from. With
// filterSelfCheck set, destinations that leave the mover's king attacked are
// removed; otherwise the set is pseudo-legal. Whose turn it is is ignored.
func Generate(b *Board, from Square, filterSelfCheck bool) (SquareSet, error) {
	if !from.InBounds() {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, from)
	}
	piece, ok := b.At(from)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}
	moves := pseudoMoves(b, from, piece)
	if !filterSelfCheck {
		return moves, nil
	}

	var legal SquareSet
	for _, to := range moves.Squares() {
		next := b.Apply(Move{From: from, To: to})
		attacked, err := IsAttacked(&next, piece.Color)
		if err != nil {
			return 0, err
		}
		if !attacked {
			legal.Add(to)
		}
	}
	return legal, nil
}

func pseudoMoves(b *Board, from Square, piece Piece) SquareSet {
	switch piece.Kind {
	case King:
		return stepMoves(b, from, piece.Color, kingDirs)
	case Knight:
		return stepMoves(b, from, piece.Color, knightDirs)
	case Pawn:
		return pawnMoves(b, from, piece.Color)
	case Rook:
		return rayMoves(b, from, piece.Color, rookDirs)
	case Bishop:
		return rayMoves(b, from, piece.Color, bishopDirs)
	case Queen:
		return rayMoves(b, from, piece.Color, rookDirs) | rayMoves(b, from, piece.Color, bishopDirs)
	}
	panic(fmt.Sprintf("model: unknown piece kind %d", int(piece.Kind)))
}

// stepMoves covers the single-step movers: every offset lands unless the
// square is off the board or holds a piece of the mover's color.
func stepMoves(b *Board, from Square, color Color, dirs []Square) SquareSet {
	var moves SquareSet
	for _, dir := range dirs {
		to := from.add(dir)
		if !to.InBounds() {
			continue
		}
		if p := b.occupant(to); p == nil || p.Color != color {
			moves.Add(to)
		}
	}
	return moves
}

func rayMoves(b *Board, from Square, color Color, dirs []Square) SquareSet {
	var moves SquareSet
	for _, dir := range dirs {
		for to := from.add(dir); to.InBounds(); to = to.add(dir) {
			p := b.occupant(to)
			if p == nil {
				moves.Add(to)
				continue
			}
			if p.Color != color {
				moves.Add(to)
			}
			break
		}
	}
	return moves
}

func pawnMoves(b *Board, from Square, color Color) SquareSet {
	dir, startRow := -1, 6
	if color == Black {
		dir, startRow = 1, 1
	}

	var moves SquareSet
	one := Square{Row: from.Row + dir, Col: from.Col}
	if one.InBounds() && b.occupant(one) == nil {
		moves.Add(one)
		two := Square{Row: from.Row + 2*dir, Col: from.Col}
		if from.Row == startRow && b.occupant(two) == nil {
			moves.Add(two)
		}
	}
	// captures only, no en passant
	for _, dc := range []int{-1, 1} {
		to := Square{Row: from.Row + dir, Col: from.Col + dc}
		if !to.InBounds() {
			continue
		}
		if p := b.occupant(to); p != nil && p.Color != color {
			moves.Add(to)
		}
	}
	return moves
}
