package dto

import (
	"github.com/google/uuid"
	"github.com/smartcity/complaint-backend/internal/models"
)

type UserListResponse struct {
	Users       []models.User `json:"users"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	Total       int64         `json:"total"`
}

type TopUser struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ComplaintCount int64     `json:"complaintCount"`
}

type UserStatsResponse struct {
	TotalUsers    int64     `json:"totalUsers"`
	VerifiedUsers int64     `json:"verifiedUsers"`
	AdminUsers    int64     `json:"adminUsers"`
	TopUsers      []TopUser `json:"topUsers"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// Validate admits only user and admin. Staff accounts are created through
// registration with a department; promoting here would leave the department
// unset.
func (r *UpdateRoleRequest) Validate() []FieldError {
	if r.Role != models.RoleUser && r.Role != models.RoleAdmin {
		return []FieldError{{"role", "Role must be user or admin"}}
	}
	return nil
}
