package model

import (
	"fmt"
	"strings"
)

// MoveHistory is the ordered record of a game's moves, past and future, with
// a cursor. Moves before the cursor are applied; moves from the cursor on can
// be redone until a new move is appended.
type MoveHistory struct {
	moves []Move
	index int
}

func NewMoveHistory() *MoveHistory {
	return &MoveHistory{moves: make([]Move, 0)}
}

func (h *MoveHistory) Len() int   { return len(h.moves) }
func (h *MoveHistory) Index() int { return h.index }

// Moves returns a copy of every stored move, including redoable ones.
func (h *MoveHistory) Moves() []Move {
	return append([]Move(nil), h.moves...)
}

// ColorToMove is the side to play at the cursor. White moves first.
func (h *MoveHistory) ColorToMove() Color {
	return plyColor(h.index)
}

func plyColor(ply int) Color {
	if ply%2 == 0 {
		return White
	}
	return Black
}

// Append drops every redoable move and records m as the newest one.
func (h *MoveHistory) Append(m Move) {
	h.moves = append(h.moves[:h.index], m)
	h.index++
}

func (h *MoveHistory) CanUndo() bool { return h.index > 0 }
func (h *MoveHistory) CanRedo() bool { return h.index < len(h.moves) }

func (h *MoveHistory) Undo() bool {
	if !h.CanUndo() {
		return false
	}
	h.index--
	return true
}

func (h *MoveHistory) Redo() bool {
	if !h.CanRedo() {
		return false
	}
	h.index++
	return true
}

// JumpTo moves the cursor to n. Values outside [0, Len] are rejected and the
// cursor stays put.
func (h *MoveHistory) JumpTo(n int) error {
	if n < 0 || n > len(h.moves) {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrHistoryOutOfRange, n, len(h.moves))
	}
	h.index = n
	return nil
}

// Reconstruct replays the moves before the cursor from the starting
// arrangement. Stored moves were legal when appended and are not re-checked.
func (h *MoveHistory) Reconstruct() Board {
	b := NewBoard()
	for _, m := range h.moves[:h.index] {
		b = b.Apply(m)
	}
	return b
}

// Annotate replays every stored move and renders its notation. The entry
// just before the cursor is marked current.
func (h *MoveHistory) Annotate() ([]AnnotatedMove, error) {
	annotated := make([]AnnotatedMove, 0, len(h.moves))
	b := NewBoard()
	for ply, m := range h.moves {
		notation, next, err := notate(&b, m, ply)
		if err != nil {
			return nil, fmt.Errorf("annotate ply %d (%s): %w", ply+1, m, err)
		}
		annotated = append(annotated, AnnotatedMove{
			Move:      m,
			Notation:  notation,
			Index:     ply + 1,
			IsCurrent: ply == h.index-1,
		})
		b = next
	}
	return annotated, nil
}

func notate(b *Board, m Move, ply int) (string, Board, error) {
	piece, ok := b.At(m.From)
	if !ok {
		return "", Board{}, fmt.Errorf("%w: %s", ErrEmptySquare, m.From)
	}

	var sb strings.Builder
	if ply%2 == 0 {
		fmt.Fprintf(&sb, "%d.", ply/2+1)
	}
	sb.WriteString(piece.Kind.Letter())
	if _, capture := b.At(m.To); capture {
		if piece.Kind == Pawn {
			sb.WriteString(m.From.File())
		}
		sb.WriteString("x")
	}
	sb.WriteString(m.To.String())

	next := b.Apply(m)
	check, err := IsAttacked(&next, plyColor(ply).Opponent())
	if err != nil {
		return "", Board{}, err
	}
	if check {
		sb.WriteString("+")
	}
	return sb.String(), next, nil
}
