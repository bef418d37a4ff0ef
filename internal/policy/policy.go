// Package policy is the single place where role and ownership capabilities
// are decided. Handlers and services consult it instead of re-deriving rules.
package policy

import (
	"github.com/smartcity/complaint-backend/internal/models"
)

// IsStaff reports whether the role carries the triage capability: reading any
// complaint, updating status and notes, listing and aggregate views.
func IsStaff(role string) bool {
	return role == models.RoleAdmin || role == models.RoleStaff
}

// IsAdmin gates the operations staff cannot perform, currently changing
// another account's role.
func IsAdmin(role string) bool {
	return role == models.RoleAdmin
}

// ownerStatuses are the only statuses an owner may set on their own
// complaint. Triage states (noted, in-progress, rejected) belong to staff.
var ownerStatuses = map[string]bool{
	models.StatusPending:  true,
	models.StatusResolved: true,
}

// OwnerMaySetStatus reports whether an owner-initiated status change is
// allowed. Ownership itself is checked separately so that a non-owner yields
// access-denied rather than invalid-status.
func OwnerMaySetStatus(status string) bool {
	return ownerStatuses[status]
}

// IsOwner reports whether the actor filed the complaint.
func IsOwner(actor *models.User, c *models.Complaint) bool {
	return actor != nil && actor.ID == c.UserID
}

// CanViewComplaint: owners see their own, staff and admins see everything.
func CanViewComplaint(actor *models.User, c *models.Complaint) bool {
	if actor == nil {
		return false
	}
	return IsOwner(actor, c) || IsStaff(actor.Role)
}

// CanDeleteComplaint: deletion is owner-only, regardless of status.
func CanDeleteComplaint(actor *models.User, c *models.Complaint) bool {
	return IsOwner(actor, c)
}
