package model

import (
	"encoding/json"
	"fmt"
)

// Board is an 8x8 grid of optional pieces. Copying a Board copies the grid;
// stored pieces are never mutated, so copies share nothing observable.
type Board struct {
	cells [8][8]*Piece
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns the standard starting arrangement.
func NewBoard() Board {
	var b Board
	for col, kind := range backRank {
		b.Place(Square{Row: 0, Col: col}, Piece{Kind: kind, Color: Black})
		b.Place(Square{Row: 1, Col: col}, Piece{Kind: Pawn, Color: Black})
		b.Place(Square{Row: 6, Col: col}, Piece{Kind: Pawn, Color: White})
		b.Place(Square{Row: 7, Col: col}, Piece{Kind: kind, Color: White})
	}
	return b
}

// At reports the piece on s. Off-board squares are empty.
func (b *Board) At(s Square) (Piece, bool) {
	if !s.InBounds() {
		return Piece{}, false
	}
	p := b.cells[s.Row][s.Col]
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

func (b *Board) occupant(s Square) *Piece {
	return b.cells[s.Row][s.Col]
}

// Place puts p on s, replacing any occupant.
func (b *Board) Place(s Square, p Piece) {
	if !s.InBounds() {
		panic(fmt.Sprintf("model: place on %v: %v", s, ErrOutOfBounds))
	}
	b.cells[s.Row][s.Col] = &p
}

// Apply returns a copy of the board with the piece on m.From moved to m.To.
// No legality check is made.
func (b *Board) Apply(m Move) Board {
	next := *b
	if !m.From.InBounds() || !m.To.InBounds() {
		return next
	}
	next.cells[m.To.Row][m.To.Col] = next.cells[m.From.Row][m.From.Col]
	next.cells[m.From.Row][m.From.Col] = nil
	return next
}

// Occupied lists the squares holding a piece of color c in row-major order.
func (b *Board) Occupied(c Color) []Square {
	var squares []Square
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.cells[row][col]; p != nil && p.Color == c {
				squares = append(squares, Square{Row: row, Col: col})
			}
		}
	}
	return squares
}

// KingSquare locates the king of color c.
func (b *Board) KingSquare(c Color) (Square, error) {
	var (
		king  Square
		found int
	)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.cells[row][col]; p != nil && p.Kind == King && p.Color == c {
				king = Square{Row: row, Col: col}
				found++
			}
		}
	}
	if found != 1 {
		return Square{}, fmt.Errorf("%w: %d %s kings", ErrMissingKing, found, c)
	}
	return king, nil
}

// MarshalJSON encodes the board as 8 rows of piece-or-null, row 0 first.
func (b Board) MarshalJSON() ([]byte, error) {
	rows := make([][]*Piece, 8)
	for row := range rows {
		rows[row] = make([]*Piece, 8)
		copy(rows[row], b.cells[row][:])
	}
	return json.Marshal(rows)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var rows [][]*Piece
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	if len(rows) != 8 {
		return fmt.Errorf("model: board has %d rows", len(rows))
	}
	var next Board
	for row, cells := range rows {
		if len(cells) != 8 {
			return fmt.Errorf("model: board row %d has %d cells", row, len(cells))
		}
		for col, p := range cells {
			if p != nil {
				next.Place(Square{Row: row, Col: col}, *p)
			}
		}
	}
	*b = next
	return nil
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(o *Board) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p, q := b.cells[row][col], o.cells[row][col]
			if (p == nil) != (q == nil) {
				return false
			}
			if p != nil && *p != *q {
				return false
			}
		}
	}
	return true
}
