package handlers

import (
	"context"
	"time"

	"recipe-catalog/domain"
	"recipe-catalog/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
)

type (
	HealthHandler interface {
		Ping(c *fiber.Ctx) error
		Ready(c *fiber.Ctx) error
	}

	Pinger interface {
		Ping(ctx context.Context) error
	}

	healthHandler struct {
		store   Pinger
		timeout time.Duration
	}
)

func NewHealthHandler(store Pinger) HealthHandler {
	return &healthHandler{store: store, timeout: 2 * time.Second}
}

func (h *healthHandler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": domain.MessagePong})
}

// Ready reports 503 while the store is unreachable.
func (h *healthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, domain.MessageStorageUnavailable)
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
