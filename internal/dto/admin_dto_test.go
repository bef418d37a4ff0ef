package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateRoleRequestValidate(t *testing.T) {
	tests := []struct {
		role string
		ok   bool
	}{
		{"user", true},
		{"admin", true},
		// Staff accounts come from registration with a department; the role
		// endpoint must not create departmentless staff.
		{"staff", false},
		{"superuser", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			req := UpdateRoleRequest{Role: tt.role}
			errs := req.Validate()
			if tt.ok {
				assert.Empty(t, errs)
			} else {
				assert.Len(t, errs, 1)
				assert.Equal(t, "role", errs[0].Field)
			}
		})
	}
}
