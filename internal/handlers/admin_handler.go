package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/smartcity/complaint-backend/internal/dto"
	"github.com/smartcity/complaint-backend/internal/middleware"
	"github.com/smartcity/complaint-backend/internal/services"
)

// AdminHandler serves the staff/admin triage panel: complaint listings,
// aggregate statistics, status updates and account management.
type AdminHandler struct {
	complaints *services.ComplaintService
	users      *services.UserService
}

func NewAdminHandler(complaints *services.ComplaintService, users *services.UserService) *AdminHandler {
	return &AdminHandler{complaints: complaints, users: users}
}

func (h *AdminHandler) ListComplaints(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	filter := services.ListFilter{
		Status:    c.Query("status"),
		Category:  c.Query("category"),
		Urgency:   c.Query("urgency"),
		SortBy:    c.Query("sortBy", "created_at"),
		SortOrder: c.Query("sortOrder", "desc"),
		Page:      page,
		Limit:     limit,
	}

	complaints, total, err := h.complaints.List(filter)
	if err != nil {
		return internalError(c, "Failed to fetch complaints")
	}
	return c.JSON(dto.ComplaintListResponse{
		Complaints:  complaints,
		TotalPages:  dto.TotalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	})
}

func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.complaints.Stats()
	if err != nil {
		return internalError(c, "Failed to fetch statistics")
	}
	return c.JSON(stats)
}

// MarkNoted acknowledges a complaint and notifies its owner. A notification
// failure never fails the transition.
func (h *AdminHandler) MarkNoted(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid complaint ID")
	}

	complaint, err := h.complaints.MarkNoted(id)
	if err != nil {
		return h.mapComplaintError(c, err, "Failed to mark complaint as noted")
	}

	return c.JSON(fiber.Map{
		"message": "Complaint marked as noted and notification sent",
		"complaint": fiber.Map{
			"id":         complaint.ID,
			"status":     complaint.Status,
			"updated_at": complaint.UpdatedAt,
		},
	})
}

// UpdateStatus is the staff-side transition: any status in the enum, with
// notes attached.
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	account := middleware.Account(c)
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid complaint ID")
	}

	var req dto.TriageRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	complaint, err := h.complaints.Triage(account.ID, id, req.Status, req.AdminNotes)
	if err != nil {
		return h.mapComplaintError(c, err, "Failed to update complaint status")
	}

	return c.JSON(fiber.Map{
		"message": "Complaint status updated successfully",
		"complaint": fiber.Map{
			"id":          complaint.ID,
			"status":      complaint.Status,
			"admin_notes": complaint.AdminNotes,
			"updated_at":  complaint.UpdatedAt,
		},
	})
}

func (h *AdminHandler) ByCategory(c *fiber.Ctx) error {
	return h.listFiltered(c, services.ListFilter{Category: c.Params("category")})
}

func (h *AdminHandler) ByUrgency(c *fiber.Ctx) error {
	return h.listFiltered(c, services.ListFilter{Urgency: c.Params("urgency")})
}

func (h *AdminHandler) Search(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return badRequest(c, "Search query is required")
	}
	return h.listFiltered(c, services.ListFilter{Search: q})
}

func (h *AdminHandler) listFiltered(c *fiber.Ctx, filter services.ListFilter) error {
	page, limit := parsePagination(c)
	filter.Page = page
	filter.Limit = limit
	filter.SortBy = "created_at"
	filter.SortOrder = "desc"

	complaints, total, err := h.complaints.List(filter)
	if err != nil {
		return internalError(c, "Failed to fetch complaints")
	}
	return c.JSON(dto.ComplaintListResponse{
		Complaints:  complaints,
		TotalPages:  dto.TotalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	})
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	page, limit := parsePagination(c)
	users, total, err := h.users.List(c.Query("role"), page, limit)
	if err != nil {
		return internalError(c, "Failed to fetch users")
	}
	return c.JSON(dto.UserListResponse{
		Users:       users,
		TotalPages:  dto.TotalPages(total, limit),
		CurrentPage: page,
		Total:       total,
	})
}

func (h *AdminHandler) UserStats(c *fiber.Ctx) error {
	stats, err := h.users.Stats()
	if err != nil {
		return internalError(c, "Failed to fetch user statistics")
	}
	return c.JSON(stats)
}

// UpdateRole changes another account's role. Admin-gated at the route level.
func (h *AdminHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	user, err := h.users.UpdateRole(id, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
		case errors.Is(err, services.ErrInvalidRole):
			return badRequest(c, err.Error())
		}
		return internalError(c, "Failed to update user role")
	}

	return c.JSON(fiber.Map{
		"message": "User role updated successfully",
		"user": fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func (h *AdminHandler) mapComplaintError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, services.ErrComplaintNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Complaint not found"})
	}
	return internalError(c, fallback)
}
