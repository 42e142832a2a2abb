package controller

import (
	"errors"
	"fmt"
	"testing"

	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrGameNotFound, fiber.StatusNotFound},
		{fmt.Errorf("failed to create game: %w", service.ErrGameExists), fiber.StatusConflict},
		{model.ErrGameFull, fiber.StatusConflict},
		{model.ErrGameOver, fiber.StatusConflict},
		{model.ErrDuplicateConnection, fiber.StatusConflict},
		{model.ErrNotYourTurn, fiber.StatusForbidden},
		{model.ErrNotAuthorized, fiber.StatusForbidden},
		{fmt.Errorf("%w: e2e5", model.ErrIllegalMove), fiber.StatusBadRequest},
		{model.ErrInvalidSquare, fiber.StatusBadRequest},
		{model.ErrHistoryOutOfRange, fiber.StatusBadRequest},
		{model.ErrEmptySquare, fiber.StatusBadRequest},
		{model.ErrMissingKing, fiber.StatusInternalServerError},
		{errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
