package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/smartcity/complaint-backend/internal/dto"
	"github.com/smartcity/complaint-backend/internal/mail"
)

type ContactHandler struct {
	mailer *mail.Mailer
}

func NewContactHandler(mailer *mail.Mailer) *ContactHandler {
	return &ContactHandler{mailer: mailer}
}

// Submit relays a contact-form message to the admin inbox.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	err := h.mailer.SendContactMessage(mail.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		slog.Error("contact message delivery failed", "error", err, "from", req.Email)
		return internalError(c, "Failed to send message")
	}

	return c.JSON(dto.MessageResponse{Message: "Message sent successfully"})
}
