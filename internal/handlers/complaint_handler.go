package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/smartcity/complaint-backend/internal/dto"
	"github.com/smartcity/complaint-backend/internal/middleware"
	"github.com/smartcity/complaint-backend/internal/services"
	"github.com/smartcity/complaint-backend/internal/storage"
)

type ComplaintHandler struct {
	complaints *services.ComplaintService
}

func NewComplaintHandler(complaints *services.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaints: complaints}
}

// Submit accepts the multipart complaint form: photo file plus description,
// location and optional coordinates.
func (h *ComplaintHandler) Submit(c *fiber.Ctx) error {
	account := middleware.Account(c)

	req := dto.SubmitComplaintRequest{
		Description: strings.TrimSpace(c.FormValue("description")),
		Location:    strings.TrimSpace(c.FormValue("location")),
	}
	if v := c.FormValue("lat"); v != "" {
		if lat, err := strconv.ParseFloat(v, 64); err == nil {
			req.Lat = &lat
		}
	}
	if v := c.FormValue("lng"); v != "" {
		if lng, err := strconv.ParseFloat(v, 64); err == nil {
			req.Lng = &lng
		}
	}
	if errs := req.Validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	photo, err := c.FormFile("photo")
	if err != nil {
		return badRequest(c, "Photo is required")
	}

	complaint, err := h.complaints.Submit(c.Context(), account, &req, photo)
	if err != nil {
		if errors.Is(err, storage.ErrPhotoTooLarge) || errors.Is(err, storage.ErrNotAnImage) {
			return validationError(c, []dto.FieldError{{Field: "photo", Message: err.Error()}})
		}
		return internalError(c, "Failed to submit complaint")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SubmitComplaintResponse{
		Message: "Complaint submitted successfully",
		Complaint: dto.ComplaintSummary{
			ID:        complaint.ID,
			Category:  complaint.Category,
			Urgency:   complaint.Urgency,
			Status:    complaint.Status,
			CreatedAt: complaint.CreatedAt,
		},
		MLResults: dto.MLSummary{
			Category: complaint.MLResults.PredictedCategory,
			Urgency:  complaint.MLResults.PredictedUrgency,
			Caption:  complaint.MLResults.Caption,
		},
	})
}

func (h *ComplaintHandler) Mine(c *fiber.Ctx) error {
	account := middleware.Account(c)
	complaints, err := h.complaints.ListMine(account.ID)
	if err != nil {
		return internalError(c, "Failed to fetch complaints")
	}
	return c.JSON(fiber.Map{"complaints": complaints})
}

// ByDepartment lists the complaints a department handles. Staff-gated at the
// route level.
func (h *ComplaintHandler) ByDepartment(c *fiber.Ctx) error {
	complaints, err := h.complaints.ByDepartment(c.Params("dept"))
	if err != nil {
		return internalError(c, "Failed to fetch department complaints")
	}
	return c.JSON(fiber.Map{"complaints": complaints})
}

func (h *ComplaintHandler) Get(c *fiber.Ctx) error {
	account := middleware.Account(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid complaint ID")
	}

	complaint, err := h.complaints.Get(account, id)
	if err != nil {
		return h.mapError(c, err, "Failed to fetch complaint")
	}
	return c.JSON(fiber.Map{"complaint": complaint})
}

// UpdateStatus is the owner-facing status patch; the policy limits owners to
// pending and resolved.
func (h *ComplaintHandler) UpdateStatus(c *fiber.Ctx) error {
	account := middleware.Account(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid complaint ID")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	complaint, err := h.complaints.UpdateStatusByOwner(account, id, req.Status)
	if err != nil {
		return h.mapError(c, err, "Failed to update complaint status")
	}

	return c.JSON(fiber.Map{
		"message": "Complaint status updated successfully",
		"complaint": fiber.Map{
			"id":         complaint.ID,
			"status":     complaint.Status,
			"updated_at": complaint.UpdatedAt,
		},
	})
}

func (h *ComplaintHandler) Delete(c *fiber.Ctx) error {
	account := middleware.Account(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid complaint ID")
	}

	if err := h.complaints.Delete(account, id); err != nil {
		return h.mapError(c, err, "Failed to delete complaint")
	}
	return c.JSON(dto.MessageResponse{Message: "Complaint deleted successfully"})
}

func (h *ComplaintHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrComplaintNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Complaint not found"})
	case errors.Is(err, services.ErrAccessDenied):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Access denied"})
	case errors.Is(err, services.ErrInvalidStatus):
		return badRequest(c, "Invalid status")
	default:
		return internalError(c, fallback)
	}
}
