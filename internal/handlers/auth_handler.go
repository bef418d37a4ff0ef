package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/smartcity/complaint-backend/internal/dto"
	"github.com/smartcity/complaint-backend/internal/middleware"
	"github.com/smartcity/complaint-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	resp, err := h.authService.Signup(&req)
	if err != nil {
		return h.mapError(c, err, "Registration failed")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return h.mapError(c, err, "Login failed")
	}
	return c.JSON(resp)
}

func (h *AuthHandler) AdminRegister(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	resp, err := h.authService.AdminRegister(&req)
	if err != nil {
		return h.mapError(c, err, "Admin registration failed")
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	resp, err := h.authService.AdminLogin(&req)
	if err != nil {
		return h.mapError(c, err, "Admin login failed")
	}
	return c.JSON(resp)
}

func (h *AuthHandler) RequestOTP(c *fiber.Ctx) error {
	var req dto.OTPRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	if err := h.authService.RequestOTP(req.Email); err != nil {
		return h.mapError(c, err, "Failed to request OTP")
	}
	return c.JSON(dto.MessageResponse{Message: "OTP sent successfully"})
}

func (h *AuthHandler) LoginOTP(c *fiber.Ctx) error {
	var req dto.OTPLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	resp, err := h.authService.LoginWithOTP(req.Email, req.OTP)
	if err != nil {
		return h.mapError(c, err, "Login failed")
	}
	return c.JSON(resp)
}

func (h *AuthHandler) RequestSignupOTP(c *fiber.Ctx) error {
	var req dto.SignupOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	if err := h.authService.RequestSignupOTP(&req); err != nil {
		return h.mapError(c, err, "Failed to request OTP")
	}
	return c.JSON(dto.MessageResponse{Message: "OTP sent successfully"})
}

func (h *AuthHandler) SignupOTP(c *fiber.Ctx) error {
	var req dto.CompleteSignupOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if errs := req.Validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	resp, err := h.authService.CompleteSignupOTP(&req)
	if err != nil {
		return h.mapError(c, err, "Signup failed")
	}
	return c.JSON(resp)
}

// CheckSecret lets the signup form pre-validate the admin secret without
// creating anything.
func (h *AuthHandler) CheckSecret(c *fiber.Ctx) error {
	var req dto.CheckSecretRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	return c.JSON(fiber.Map{"valid": h.authService.SecretMatches(req.Secret)})
}

// Me returns the authenticated account. Password and OTP material are hidden
// by the model's serialization.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	account := middleware.Account(c)
	if account == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid token"})
	}
	return c.JSON(fiber.Map{"user": account})
}

func (h *AuthHandler) mapError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		return badRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidOTP):
		return badRequest(c, "Invalid or expired OTP")
	case errors.Is(err, services.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid credentials"})
	case errors.Is(err, services.ErrInvalidSecret), errors.Is(err, services.ErrNotStaffAccount):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: err.Error()})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "User not found"})
	default:
		return internalError(c, fallback)
	}
}
