package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger lo implementa *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responde el estado del servicio.
type HealthHandler struct {
	appName string
	db      Pinger
}

// NewHealthHandler construye el handler; db puede ser nil.
func NewHealthHandler(appName string, db Pinger) *HealthHandler {
	return &HealthHandler{appName: appName, db: db}
}

// Check GET /health. Con ?db=1 además hace ping a la base.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if c.QueryBool("db") && h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded", "service": h.appName, "db": "unreachable",
			})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": h.appName, "db": "ok"})
	}
	return c.JSON(fiber.Map{"status": "ok", "service": h.appName})
}
