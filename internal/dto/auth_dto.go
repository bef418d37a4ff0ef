package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/smartcity/complaint-backend/internal/models"
)

type SignupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Secret     string `json:"secret,omitempty"`
	Department string `json:"department,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

func (r *SignupRequest) Validate() []FieldError {
	var errs []FieldError
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if r.Name == "" {
		errs = append(errs, FieldError{"name", "Name is required"})
	} else if len(r.Name) > 50 {
		errs = append(errs, FieldError{"name", "Name cannot be more than 50 characters"})
	}
	if !ValidEmail(r.Email) {
		errs = append(errs, FieldError{"email", "Please enter a valid email"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, FieldError{"password", "Password must be at least 6 characters long"})
	}
	if r.Department != "" && !models.ValidDepartment(r.Department) {
		errs = append(errs, FieldError{"department", "Unknown department"})
	}
	return errs
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() []FieldError {
	var errs []FieldError
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if !ValidEmail(r.Email) {
		errs = append(errs, FieldError{"email", "Please enter a valid email"})
	}
	if r.Password == "" {
		errs = append(errs, FieldError{"password", "Password is required"})
	}
	return errs
}

type OTPRequest struct {
	Email string `json:"email"`
}

func (r *OTPRequest) Validate() []FieldError {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if !ValidEmail(r.Email) {
		return []FieldError{{"email", "Please enter a valid email"}}
	}
	return nil
}

type OTPLoginRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (r *OTPLoginRequest) Validate() []FieldError {
	var errs []FieldError
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if !ValidEmail(r.Email) {
		errs = append(errs, FieldError{"email", "Please enter a valid email"})
	}
	if len(r.OTP) != 6 {
		errs = append(errs, FieldError{"otp", "OTP must be a 6-digit code"})
	}
	return errs
}

type SignupOTPRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (r *SignupOTPRequest) Validate() []FieldError {
	var errs []FieldError
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Name == "" {
		errs = append(errs, FieldError{"name", "Name is required"})
	}
	if !ValidEmail(r.Email) {
		errs = append(errs, FieldError{"email", "Please enter a valid email"})
	}
	return errs
}

type CompleteSignupOTPRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

func (r *CompleteSignupOTPRequest) Validate() []FieldError {
	var errs []FieldError
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Name == "" {
		errs = append(errs, FieldError{"name", "Name is required"})
	}
	if !ValidEmail(r.Email) {
		errs = append(errs, FieldError{"email", "Please enter a valid email"})
	}
	if len(r.OTP) != 6 {
		errs = append(errs, FieldError{"otp", "OTP must be a 6-digit code"})
	}
	return errs
}

type CheckSecretRequest struct {
	Secret string `json:"secret"`
}

type UserResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Department *string   `json:"department,omitempty"`
	IsVerified bool      `json:"is_verified"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Department: u.Department,
		IsVerified: u.IsVerified,
	}
}

type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
