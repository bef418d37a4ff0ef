package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/smartcity/complaint-backend/internal/classifier"
	"github.com/smartcity/complaint-backend/internal/dto"
	"github.com/smartcity/complaint-backend/internal/mail"
	"github.com/smartcity/complaint-backend/internal/models"
	"github.com/smartcity/complaint-backend/internal/policy"
	"github.com/smartcity/complaint-backend/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrAccessDenied      = errors.New("access denied")
	ErrInvalidStatus     = errors.New("invalid status")
)

// departmentCategories maps a staff department to the complaint category it
// handles.
var departmentCategories = map[string]string{
	"Roads":       "Road Issues",
	"Water":       "Water Supply",
	"Electricity": "Electricity",
	"Sanitation":  "Sanitation",
	"Other":       "Other",
}

type ComplaintService struct {
	db     *gorm.DB
	ml     *classifier.Client
	photos *storage.PhotoStore
	mailer Notifier
}

func NewComplaintService(db *gorm.DB, ml *classifier.Client, photos *storage.PhotoStore, mailer Notifier) *ComplaintService {
	return &ComplaintService{db: db, ml: ml, photos: photos, mailer: mailer}
}

// Submit stores the photo, classifies the complaint and persists it as
// pending. Classification degrades but never fails: ML service errors fall
// back to keyword analysis, an unreadable photo to the fixed unavailable
// result.
func (s *ComplaintService) Submit(ctx context.Context, owner *models.User, req *dto.SubmitComplaintRequest, photo *multipart.FileHeader) (*models.Complaint, error) {
	photoURL, err := s.photos.Save(photo)
	if err != nil {
		return nil, err
	}

	result := s.classify(ctx, photoURL, req.Description)

	complaint := models.Complaint{
		ID:          uuid.New(),
		UserID:      owner.ID,
		Photo:       photoURL,
		Description: req.Description,
		Location:    req.Location,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Category:    result.Category,
		Urgency:     result.Urgency,
		Status:      models.StatusPending,
		MLResults: models.Classification{
			Caption:           result.Caption,
			PredictedCategory: result.Category,
			PredictedUrgency:  result.Urgency,
			Confidence:        result.Confidence,
		},
	}

	if err := s.db.Create(&complaint).Error; err != nil {
		s.photos.Remove(photoURL)
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	return &complaint, nil
}

func (s *ComplaintService) classify(ctx context.Context, photoURL, description string) classifier.Result {
	f, err := s.photos.Open(photoURL)
	if err != nil {
		slog.Error("stored photo unreadable, skipping analysis", "photo", photoURL, "error", err)
		return classifier.Unavailable()
	}
	defer f.Close()

	result, err := s.ml.Analyze(ctx, filepath.Base(photoURL), f, description)
	if err != nil {
		slog.Warn("classification service unavailable, using keyword fallback", "error", err)
		return classifier.Fallback(description)
	}
	return result
}

// ListMine returns the caller's own complaints, newest first.
func (s *ComplaintService) ListMine(ownerID uuid.UUID) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.db.Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&complaints).Error
	return complaints, err
}

// Get loads one complaint for the actor, enforcing the read policy.
func (s *ComplaintService) Get(actor *models.User, id uuid.UUID) (*models.Complaint, error) {
	complaint, err := s.load(id, true)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewComplaint(actor, complaint) {
		return nil, ErrAccessDenied
	}
	return complaint, nil
}

// UpdateStatusByOwner applies the owner-initiated status change. Owners are
// limited to the statuses the policy table grants them.
func (s *ComplaintService) UpdateStatusByOwner(actor *models.User, id uuid.UUID, status string) (*models.Complaint, error) {
	complaint, err := s.load(id, false)
	if err != nil {
		return nil, err
	}
	if !policy.IsOwner(actor, complaint) {
		return nil, ErrAccessDenied
	}
	if !policy.OwnerMaySetStatus(status) {
		return nil, ErrInvalidStatus
	}

	complaint.ApplyOwnerStatus(status)
	if err := s.db.Save(complaint).Error; err != nil {
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}
	return complaint, nil
}

// Delete removes an owned complaint together with its photo asset. A photo
// file that is already gone does not fail the deletion.
func (s *ComplaintService) Delete(actor *models.User, id uuid.UUID) error {
	complaint, err := s.load(id, false)
	if err != nil {
		return err
	}
	if !policy.CanDeleteComplaint(actor, complaint) {
		return ErrAccessDenied
	}

	if complaint.Photo != "" {
		if err := s.photos.Remove(complaint.Photo); err != nil {
			slog.Error("failed to remove complaint photo", "photo", complaint.Photo, "error", err)
		}
	}
	if err := s.db.Delete(complaint).Error; err != nil {
		return fmt.Errorf("failed to delete complaint: %w", err)
	}
	return nil
}

// MarkNoted moves a complaint into triage and notifies the owner. The
// notification is best-effort: a mail failure is logged, never surfaced.
func (s *ComplaintService) MarkNoted(id uuid.UUID) (*models.Complaint, error) {
	complaint, err := s.load(id, true)
	if err != nil {
		return nil, err
	}

	complaint.MarkNoted()
	if err := s.db.Save(complaint).Error; err != nil {
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}

	if complaint.User != nil {
		err := s.mailer.SendComplaintNoted(complaint.User.Email, mail.NotedComplaint{
			Category: complaint.Category,
			Urgency:  complaint.Urgency,
			Location: complaint.Location,
		})
		if err != nil {
			slog.Error("failed to send noted notification", "complaint_id", complaint.ID, "error", err)
		}
	}
	return complaint, nil
}

// Triage applies a staff/admin status update with notes. Resolution stamps
// the acting admin.
func (s *ComplaintService) Triage(adminID uuid.UUID, id uuid.UUID, status, notes string) (*models.Complaint, error) {
	complaint, err := s.load(id, false)
	if err != nil {
		return nil, err
	}

	complaint.ApplyTriage(status, adminID, notes)
	if err := s.db.Save(complaint).Error; err != nil {
		return nil, fmt.Errorf("failed to update complaint: %w", err)
	}
	return complaint, nil
}

// ListFilter is the shared list/filter/sort/paginate contract.
type ListFilter struct {
	Status    string
	Category  string
	Urgency   string
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

var sortableColumns = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"status":     true,
	"category":   true,
	"urgency":    true,
}

// List applies the filter and returns one page plus the unpaginated total.
// A page past the end yields an empty list, not an error.
func (s *ComplaintService) List(f ListFilter) ([]models.Complaint, int64, error) {
	query := s.db.Model(&models.Complaint{})
	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Urgency != "" {
		query = query.Where("urgency = ?", f.Urgency)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where("description ILIKE ? OR location ILIKE ? OR category ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := f.SortBy
	if !sortableColumns[sortBy] {
		sortBy = "created_at"
	}
	order := "DESC"
	if f.SortOrder == "asc" {
		order = "ASC"
	}

	var complaints []models.Complaint
	err := query.
		Preload("User", userSummary).
		Preload("ResolvedBy", userSummary).
		Order(sortBy + " " + order).
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&complaints).Error
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

// ByDepartment lists the complaints a staff department is responsible for.
func (s *ComplaintService) ByDepartment(dept string) ([]models.Complaint, error) {
	category, ok := departmentCategories[dept]
	if !ok {
		category = dept
	}
	var complaints []models.Complaint
	err := s.db.Where("category = ?", category).
		Order("created_at DESC").
		Find(&complaints).Error
	return complaints, err
}

// Stats aggregates the derived statistics for the admin dashboard.
func (s *ComplaintService) Stats() (*dto.ComplaintStatsResponse, error) {
	stats := &dto.ComplaintStatsResponse{}
	model := func() *gorm.DB { return s.db.Model(&models.Complaint{}) }

	if err := model().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := model().Where("status = ?", models.StatusPending).Count(&stats.Pending).Error; err != nil {
		return nil, err
	}
	if err := model().Where("status = ?", models.StatusResolved).Count(&stats.Resolved).Error; err != nil {
		return nil, err
	}
	if err := model().Where("urgency = ?", models.UrgencyHigh).Count(&stats.HighUrgency).Error; err != nil {
		return nil, err
	}

	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	if err := model().Where("created_at >= ?", sevenDaysAgo).Count(&stats.RecentComplaints).Error; err != nil {
		return nil, err
	}

	err := model().
		Select("category, count(*) as count").
		Group("category").
		Order("count DESC").
		Scan(&stats.CategoryStats).Error
	if err != nil {
		return nil, err
	}

	err = model().
		Select("urgency, count(*) as count").
		Group("urgency").
		Order("count DESC").
		Scan(&stats.UrgencyStats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *ComplaintService) load(id uuid.UUID, withUsers bool) (*models.Complaint, error) {
	query := s.db
	if withUsers {
		query = query.Preload("User", userSummary).Preload("ResolvedBy", userSummary)
	}
	var complaint models.Complaint
	if err := query.First(&complaint, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrComplaintNotFound
		}
		return nil, err
	}
	return &complaint, nil
}

// userSummary limits preloaded accounts to presentation fields.
func userSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email")
}
