package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		want  int
	}{
		{"partial last page rounds up", 23, 10, 3},
		{"exact multiple", 20, 10, 2},
		{"fewer than one page", 3, 10, 1},
		{"empty result", 0, 10, 0},
		{"limit one", 5, 1, 5},
		{"zero limit", 5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit))
		})
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@city.gov",
		"citizen-1@mail.co",
	}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), email)
	}
}
