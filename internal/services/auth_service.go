package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/smartcity/complaint-backend/internal/config"
	"github.com/smartcity/complaint-backend/internal/dto"
	"github.com/smartcity/complaint-backend/internal/mail"
	"github.com/smartcity/complaint-backend/internal/models"
	"github.com/smartcity/complaint-backend/internal/policy"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidSecret      = errors.New("invalid secret number")
	ErrNotStaffAccount    = errors.New("admin or staff account required")
	ErrOTPDelivery        = errors.New("failed to send OTP email")
)

const bcryptCost = 12

// Placeholder credential for accounts created through the OTP signup flow.
// Such accounts authenticate via OTP until they set a real password.
const placeholderPassword = "temporary"

// Notifier is the outbound email surface the services depend on.
type Notifier interface {
	SendOTP(to, otp, kind string) error
	SendComplaintNoted(to string, c mail.NotedComplaint) error
}

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer Notifier
}

func NewAuthService(db *gorm.DB, cfg *config.Config, mailer Notifier) *AuthService {
	return &AuthService{db: db, cfg: cfg, mailer: mailer}
}

// Signup registers an account. The role is resolved server-side: a caller
// presenting the admin secret becomes staff (with a department) or admin
// (without one); everyone else is a citizen.
func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if s.emailTaken(req.Email) {
		return nil, ErrEmailTaken
	}

	role, dept := s.resolveRole(req.Secret, req.Department)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:         uuid.New(),
		Name:       req.Name,
		Email:      req.Email,
		Password:   string(hash),
		Role:       role,
		Department: dept,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.authResponse("User registered successfully", &user)
}

// AdminRegister is the staff/admin registration flow: the secret is
// mandatory, not merely elevating.
func (s *AuthService) AdminRegister(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if !s.secretMatches(req.Secret) {
		return nil, ErrInvalidSecret
	}
	return s.Signup(req)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userByEmail(req.Email)
	if err != nil {
		// Same error whether the email is unknown or the password is
		// wrong.
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.authResponse("Login successful", user)
}

// AdminLogin is Login restricted to staff and admin accounts.
func (s *AuthService) AdminLogin(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	resp, err := s.Login(req)
	if err != nil {
		return nil, err
	}
	if !policy.IsStaff(resp.User.Role) {
		return nil, ErrNotStaffAccount
	}
	resp.Message = "Admin login successful"
	return resp, nil
}

// RequestOTP issues a login code to an existing account. Delivery failure is
// reported to the caller; a code that cannot reach the user is useless.
func (s *AuthService) RequestOTP(email string) error {
	user, err := s.userByEmail(email)
	if err != nil {
		return ErrUserNotFound
	}
	return s.issueAndSend(user, "Login OTP")
}

func (s *AuthService) LoginWithOTP(email, otp string) (*dto.AuthResponse, error) {
	user, err := s.userByEmail(email)
	if err != nil {
		return nil, ErrUserNotFound
	}

	ok := user.VerifyOTP(otp)
	// Persist even on failure: expiry consumes the code.
	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if !ok {
		return nil, ErrInvalidOTP
	}
	return s.authResponse("Login successful", user)
}

// RequestSignupOTP creates an unverified placeholder account and mails it a
// signup code.
func (s *AuthService) RequestSignupOTP(req *dto.SignupOTPRequest) error {
	if s.emailTaken(req.Email) {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(placeholderPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleUser,
	}
	code, err := user.IssueOTP()
	if err != nil {
		return err
	}
	if err := s.db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.mailer.SendOTP(user.Email, code, "Signup OTP"); err != nil {
		return ErrOTPDelivery
	}
	return nil
}

// CompleteSignupOTP finalizes an OTP signup: verifies the code, fixes the
// display name and marks the account verified.
func (s *AuthService) CompleteSignupOTP(req *dto.CompleteSignupOTPRequest) (*dto.AuthResponse, error) {
	user, err := s.userByEmail(req.Email)
	if err != nil {
		return nil, ErrUserNotFound
	}

	ok := completeSignup(user, req.Name, req.OTP)
	// Persist even on failure: expiry consumes the code.
	if err := s.db.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if !ok {
		return nil, ErrInvalidOTP
	}
	return s.authResponse("Account created successfully", user)
}

// completeSignup consumes the pending code and finalizes the display name only
// when the code verifies. A wrong code must never rename the account: anyone
// can post an arbitrary email with a guessed OTP.
func completeSignup(user *models.User, name, otp string) bool {
	ok := user.VerifyOTP(otp)
	if ok {
		user.Name = name
	}
	return ok
}

// SecretMatches exposes the admin-secret check for the pre-flight endpoint
// the signup form uses.
func (s *AuthService) SecretMatches(secret string) bool {
	return s.secretMatches(secret)
}

// GenerateToken issues the 7-day session credential carrying the account id
// and role context.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) resolveRole(secret, department string) (string, *string) {
	if !s.secretMatches(secret) {
		return models.RoleUser, nil
	}
	if department != "" {
		dept := department
		return models.RoleStaff, &dept
	}
	return models.RoleAdmin, nil
}

func (s *AuthService) secretMatches(secret string) bool {
	return s.cfg.AdminSecret != "" && secret == s.cfg.AdminSecret
}

func (s *AuthService) issueAndSend(user *models.User, kind string) error {
	code, err := user.IssueOTP()
	if err != nil {
		return err
	}
	if err := s.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	if err := s.mailer.SendOTP(user.Email, code, kind); err != nil {
		return ErrOTPDelivery
	}
	return nil
}

func (s *AuthService) userByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) emailTaken(email string) bool {
	var existing models.User
	return s.db.Where("email = ?", email).First(&existing).Error == nil
}

func (s *AuthService) authResponse(message string, user *models.User) (*dto.AuthResponse, error) {
	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &dto.AuthResponse{
		Message: message,
		Token:   token,
		User:    dto.NewUserResponse(user),
	}, nil
}
