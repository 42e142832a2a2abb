package model

import (
	"encoding/json"
	"fmt"
	"math/bits"
)

// Square is a (row, column) board coordinate. Row 0 is Black's back rank
// (rank 8) and column 0 is the a-file.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Square) InBounds() bool {
	return s.Row >= 0 && s.Row < 8 && s.Col >= 0 && s.Col < 8
}

func (s Square) add(d Square) Square {
	return Square{Row: s.Row + d.Row, Col: s.Col + d.Col}
}

// File returns the file letter of the square, 'a' for column 0.
func (s Square) File() string {
	return fmt.Sprintf("%c", 'a'+s.Col)
}

// Rank returns the rank number of the square, 8 for row 0.
func (s Square) Rank() int {
	return 8 - s.Row
}

func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return fmt.Sprintf("%s%d", s.File(), s.Rank())
}

// ParseSquare reads a square label such as "e4".
func ParseSquare(label string) (Square, error) {
	if len(label) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, label)
	}
	file, rank := label[0], label[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, label)
	}
	return Square{Row: 8 - int(rank-'0'), Col: int(file - 'a')}, nil
}

// SquareSet is a set of on-board squares.
type SquareSet uint64

func bit(s Square) SquareSet {
	return 1 << uint(s.Row*8+s.Col)
}

func (ss *SquareSet) Add(s Square) {
	if s.InBounds() {
		*ss |= bit(s)
	}
}

func (ss SquareSet) Contains(s Square) bool {
	return s.InBounds() && ss&bit(s) != 0
}

func (ss SquareSet) Len() int {
	return bits.OnesCount64(uint64(ss))
}

// Squares lists the members in row-major order.
func (ss SquareSet) Squares() []Square {
	squares := make([]Square, 0, ss.Len())
	for rest := uint64(ss); rest != 0; rest &= rest - 1 {
		i := bits.TrailingZeros64(rest)
		squares = append(squares, Square{Row: i / 8, Col: i % 8})
	}
	return squares
}

func (ss SquareSet) MarshalJSON() ([]byte, error) {
	labels := make([]string, 0, ss.Len())
	for _, s := range ss.Squares() {
		labels = append(labels, s.String())
	}
	return json.Marshal(labels)
}

func (ss *SquareSet) UnmarshalJSON(data []byte) error {
	var labels []string
	if err := json.Unmarshal(data, &labels); err != nil {
		return err
	}
	var set SquareSet
	for _, label := range labels {
		s, err := ParseSquare(label)
		if err != nil {
			return err
		}
		set.Add(s)
	}
	*ss = set
	return nil
}
