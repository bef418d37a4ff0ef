package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/smartcity/complaint-backend/internal/classifier"
	"github.com/smartcity/complaint-backend/internal/database"
	"github.com/smartcity/complaint-backend/internal/dto"
)

type HealthHandler struct {
	ml *classifier.Client
}

func NewHealthHandler(ml *classifier.Client) *HealthHandler {
	return &HealthHandler{ml: ml}
}

// Check reports service liveness plus the state of the database and the
// classifier. A degraded classifier does not fail the check; complaint
// submission falls back to keyword classification without it.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        "up",
		MLService: "up",
	}

	if err := database.Ping(); err != nil {
		resp.Status = "degraded"
		resp.DB = "down"
	}
	if !h.ml.Health(c.Context()) {
		resp.MLService = "down"
	}

	status := fiber.StatusOK
	if resp.DB == "down" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}
