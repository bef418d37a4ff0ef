package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending    = "pending"
	StatusNoted      = "noted"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusRejected   = "rejected"
)

const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// Categories a complaint can be classified into. The category is always
// assigned from the classification result, never chosen by the citizen.
var Categories = []string{
	"Road Issues",
	"Water Supply",
	"Electricity",
	"Sanitation",
	"Street Lighting",
	"Public Transport",
	"Parks & Recreation",
	"Noise Pollution",
	"Air Pollution",
	"Waste Management",
	"Traffic Management",
	"Public Safety",
	"Healthcare",
	"Education",
	"Other",
}

// Classification is the snapshot of the ML (or fallback) analysis taken at
// submission time.
type Classification struct {
	Caption           string  `json:"caption"`
	PredictedCategory string  `gorm:"size:50" json:"predicted_category"`
	PredictedUrgency  string  `gorm:"size:10" json:"predicted_urgency"`
	Confidence        float64 `json:"confidence"`
}

// Complaint is a citizen-filed report. Owned by the filing user; readable by
// staff and admins.
type Complaint struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_complaints_user_created,priority:1" json:"user_id"`
	User         *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Photo        string         `gorm:"not null" json:"photo"`
	Description  string         `gorm:"size:1000;not null" json:"description"`
	Location     string         `gorm:"not null" json:"location"`
	Lat          *float64       `json:"lat,omitempty"`
	Lng          *float64       `json:"lng,omitempty"`
	Category     string         `gorm:"size:50;not null;index" json:"category"`
	Urgency      string         `gorm:"size:10;not null;default:'medium';index:idx_complaints_status_urgency,priority:2" json:"urgency"`
	Status       string         `gorm:"size:20;not null;default:'pending';index:idx_complaints_status_urgency,priority:1" json:"status"`
	MLResults    Classification `gorm:"embedded;embeddedPrefix:ml_" json:"ml_results"`
	AdminNotes   string         `gorm:"size:500" json:"admin_notes,omitempty"`
	ResolvedAt   *time.Time     `json:"resolved_at,omitempty"`
	ResolvedByID *uuid.UUID     `gorm:"type:uuid" json:"resolved_by_id,omitempty"`
	ResolvedBy   *User          `gorm:"foreignKey:ResolvedByID" json:"resolved_by,omitempty"`
	CreatedAt    time.Time      `gorm:"index:idx_complaints_user_created,priority:2,sort:desc" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusNoted, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

func ValidUrgency(urgency string) bool {
	return urgency == UrgencyLow || urgency == UrgencyMedium || urgency == UrgencyHigh
}

// MarkNoted moves the complaint into triage. The caller persists the mutation
// and sends the owner notification.
func (c *Complaint) MarkNoted() {
	c.Status = StatusNoted
}

// ApplyTriage sets an arbitrary status with admin notes. Resolution stamps
// the acting admin and the resolution time.
func (c *Complaint) ApplyTriage(status string, adminID uuid.UUID, notes string) {
	c.Status = status
	c.AdminNotes = notes
	if status == StatusResolved {
		now := time.Now()
		c.ResolvedAt = &now
		c.ResolvedByID = &adminID
	}
}

// ApplyOwnerStatus sets a status on behalf of the owner. Owners never appear
// as resolvedBy; only the resolution time is stamped.
func (c *Complaint) ApplyOwnerStatus(status string) {
	c.Status = status
	if status == StatusResolved {
		now := time.Now()
		c.ResolvedAt = &now
	}
}
