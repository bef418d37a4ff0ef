package services

import (
	"testing"

	"github.com/smartcity/complaint-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDepartmentCategories(t *testing.T) {
	// Every department staff can belong to must route to a category.
	for _, dept := range models.Departments {
		category, ok := departmentCategories[dept]
		assert.True(t, ok, dept)
		assert.Contains(t, models.Categories, category)
	}

	assert.Equal(t, "Road Issues", departmentCategories["Roads"])
	assert.Equal(t, "Water Supply", departmentCategories["Water"])
}
