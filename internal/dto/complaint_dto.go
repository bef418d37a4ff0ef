package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/smartcity/complaint-backend/internal/models"
)

type SubmitComplaintRequest struct {
	Description string   `json:"description" form:"description"`
	Location    string   `json:"location" form:"location"`
	Lat         *float64 `json:"lat" form:"lat"`
	Lng         *float64 `json:"lng" form:"lng"`
}

func (r *SubmitComplaintRequest) Validate() []FieldError {
	var errs []FieldError
	r.Description = strings.TrimSpace(r.Description)
	r.Location = strings.TrimSpace(r.Location)

	if len(r.Description) < 10 || len(r.Description) > 1000 {
		errs = append(errs, FieldError{"description", "Description must be between 10 and 1000 characters"})
	}
	if r.Location == "" {
		errs = append(errs, FieldError{"location", "Location is required"})
	}
	return errs
}

// UpdateStatusRequest is the owner-facing status patch.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// TriageRequest is the staff/admin status update with notes.
type TriageRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

func (r *TriageRequest) Validate() []FieldError {
	var errs []FieldError
	r.AdminNotes = strings.TrimSpace(r.AdminNotes)
	if !models.ValidStatus(r.Status) {
		errs = append(errs, FieldError{"status", "Invalid status"})
	}
	if len(r.AdminNotes) > 500 {
		errs = append(errs, FieldError{"admin_notes", "Admin notes cannot be more than 500 characters"})
	}
	return errs
}

type ComplaintSummary struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Urgency   string    `json:"urgency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type MLSummary struct {
	Category string `json:"category"`
	Urgency  string `json:"urgency"`
	Caption  string `json:"caption"`
}

type SubmitComplaintResponse struct {
	Message   string           `json:"message"`
	Complaint ComplaintSummary `json:"complaint"`
	MLResults MLSummary        `json:"ml_results"`
}

type ComplaintListResponse struct {
	Complaints  []models.Complaint `json:"complaints"`
	TotalPages  int                `json:"totalPages"`
	CurrentPage int                `json:"currentPage"`
	Total       int64              `json:"total"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type UrgencyCount struct {
	Urgency string `json:"urgency"`
	Count   int64  `json:"count"`
}

type ComplaintStatsResponse struct {
	Total            int64           `json:"total"`
	Pending          int64           `json:"pending"`
	Resolved         int64           `json:"resolved"`
	HighUrgency      int64           `json:"highUrgency"`
	RecentComplaints int64           `json:"recentComplaints"`
	CategoryStats    []CategoryCount `json:"categoryStats"`
	UrgencyStats     []UrgencyCount  `json:"urgencyStats"`
}
