package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/smartcity/complaint-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUpdateRoleRejectsStaff(t *testing.T) {
	svc := NewUserService(nil)

	// Rejected before any lookup: staff needs a department, which this
	// operation cannot supply.
	_, err := svc.UpdateRole(uuid.New(), models.RoleStaff)
	assert.ErrorIs(t, err, ErrInvalidRole)

	_, err = svc.UpdateRole(uuid.New(), "superuser")
	assert.ErrorIs(t, err, ErrInvalidRole)
}
