package model

import "errors"

var (
	ErrOutOfBounds       = errors.New("square out of bounds")
	ErrInvalidSquare     = errors.New("invalid square label")
	ErrEmptySquare       = errors.New("no piece at square")
	ErrMissingKing       = errors.New("board must hold exactly one king per color")
	ErrHistoryOutOfRange = errors.New("history index out of range")

	ErrIllegalMove   = errors.New("illegal move")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrGameOver      = errors.New("game is over")
	ErrGameFull      = errors.New("game is full")
	ErrNotAuthorized = errors.New("not authorized for this game")

	ErrDuplicateConnection = errors.New("player already connected")
)
