package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitComplaintRequestValidate(t *testing.T) {
	tests := []struct {
		name   string
		req    SubmitComplaintRequest
		fields []string
	}{
		{
			name: "valid",
			req:  SubmitComplaintRequest{Description: "Large pothole on Elm Street", Location: "Elm Street 42"},
		},
		{
			name:   "description too short",
			req:    SubmitComplaintRequest{Description: "too short", Location: "Somewhere"},
			fields: []string{"description"},
		},
		{
			name:   "description too long",
			req:    SubmitComplaintRequest{Description: strings.Repeat("x", 1001), Location: "Somewhere"},
			fields: []string{"description"},
		},
		{
			name:   "missing location",
			req:    SubmitComplaintRequest{Description: "Large pothole on Elm Street"},
			fields: []string{"location"},
		},
		{
			name:   "whitespace only location",
			req:    SubmitComplaintRequest{Description: "Large pothole on Elm Street", Location: "   "},
			fields: []string{"location"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.req.Validate()
			var got []string
			for _, e := range errs {
				got = append(got, e.Field)
			}
			assert.Equal(t, tt.fields, got)
		})
	}
}

func TestTriageRequestValidate(t *testing.T) {
	valid := TriageRequest{Status: "in-progress", AdminNotes: "crew dispatched"}
	assert.Empty(t, valid.Validate())

	bad := TriageRequest{Status: "escalated"}
	errs := bad.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "status", errs[0].Field)

	longNotes := TriageRequest{Status: "resolved", AdminNotes: strings.Repeat("n", 501)}
	errs = longNotes.Validate()
	assert.Len(t, errs, 1)
	assert.Equal(t, "admin_notes", errs[0].Field)
}
