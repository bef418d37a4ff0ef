package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartcity/complaint-backend/internal/dto"
	"github.com/smartcity/complaint-backend/internal/policy"
)

// StaffRequired gates triage endpoints: staff and admin only. Runs after
// LoadAccount.
func StaffRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		account := Account(c)
		if account == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Invalid token",
			})
		}
		if !policy.IsStaff(account.Role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Message: "Access denied",
			})
		}
		return c.Next()
	}
}

// AdminRequired gates the admin-only operations (role changes).
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		account := Account(c)
		if account == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Invalid token",
			})
		}
		if !policy.IsAdmin(account.Role) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Message: "Admin access required",
			})
		}
		return c.Next()
	}
}
