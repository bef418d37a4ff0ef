package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/smartcity/complaint-backend/internal/dto"
	"github.com/smartcity/complaint-backend/internal/models"
	"gorm.io/gorm"
)

var ErrInvalidRole = errors.New("role must be user or admin")

// UserService covers the admin-side account operations: listing, aggregate
// stats and role changes.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns one page of accounts, optionally filtered by role.
func (s *UserService) List(role string, page, limit int) ([]models.User, int64, error) {
	query := s.db.Model(&models.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// Stats aggregates account counts and the ten most active complainants.
func (s *UserService) Stats() (*dto.UserStatsResponse, error) {
	stats := &dto.UserStatsResponse{}
	model := func() *gorm.DB { return s.db.Model(&models.User{}) }

	if err := model().Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := model().Where("is_verified = ?", true).Count(&stats.VerifiedUsers).Error; err != nil {
		return nil, err
	}
	if err := model().Where("role = ?", models.RoleAdmin).Count(&stats.AdminUsers).Error; err != nil {
		return nil, err
	}

	err := s.db.Table("users").
		Select("users.id, users.name, users.email, count(complaints.id) AS complaint_count").
		Joins("LEFT JOIN complaints ON complaints.user_id = users.id").
		Group("users.id, users.name, users.email").
		Order("complaint_count DESC").
		Limit(10).
		Scan(&stats.TopUsers).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// UpdateRole changes an account's role to user or admin; staff promotion
// goes through registration, where a department is attached. Neither target
// role carries a department, so any previous one is cleared.
func (s *UserService) UpdateRole(id uuid.UUID, role string) (*models.User, error) {
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, ErrInvalidRole
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.Role = role
	user.Department = nil
	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}
