package models

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Departments a staff account can belong to.
var Departments = []string{"Sanitation", "Water", "Roads", "Electricity", "Other"}

const otpTTL = 10 * time.Minute

// User is any authenticated principal: citizen, staff member or admin.
// Password and OTP material are never serialized.
type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string      `gorm:"size:50;not null" json:"name"`
	Email        string      `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password     string      `gorm:"not null" json:"-"`
	Phone        *string     `gorm:"size:20" json:"phone,omitempty"`
	Role         string      `gorm:"size:20;not null;default:'user'" json:"role"`
	Department   *string     `gorm:"size:30" json:"department,omitempty"`
	IsVerified   bool        `gorm:"not null;default:false" json:"is_verified"`
	OTPCode      *string     `gorm:"size:6" json:"-"`
	OTPExpiresAt *time.Time  `json:"-"`
	Complaints   []Complaint `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleStaff || role == RoleAdmin
}

func ValidDepartment(dept string) bool {
	for _, d := range Departments {
		if d == dept {
			return true
		}
	}
	return false
}

// IssueOTP replaces any pending code with a fresh 6-digit one valid for
// 10 minutes. The caller persists the user and delivers the code out-of-band.
func (u *User) IssueOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64()+100000)
	expires := time.Now().Add(otpTTL)
	u.OTPCode = &code
	u.OTPExpiresAt = &expires
	return code, nil
}

// VerifyOTP consumes the pending code. A code is single-use: it is cleared on
// success and on expiry, so resubmitting it always fails. On success the
// account is marked verified. The caller persists the mutation.
func (u *User) VerifyOTP(code string) bool {
	if u.OTPCode == nil || u.OTPExpiresAt == nil {
		return false
	}
	if time.Now().After(*u.OTPExpiresAt) {
		u.ClearOTP()
		return false
	}
	if *u.OTPCode != code {
		return false
	}
	u.IsVerified = true
	u.ClearOTP()
	return true
}

func (u *User) ClearOTP() {
	u.OTPCode = nil
	u.OTPExpiresAt = nil
}
