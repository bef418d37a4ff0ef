package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/smartcity/complaint-backend/internal/dto"
	"github.com/smartcity/complaint-backend/internal/models"
	"gorm.io/gorm"
)

const accountKey = "account"

// TokenUserID extracts the account UUID from the verified JWT in context.
func TokenUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	return uuid.Parse(sub)
}

// LoadAccount resolves the token's account against the database so handlers
// and role gates see the current role, not the one baked into the token.
// Runs after JWTProtected.
func LoadAccount(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := TokenUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Invalid token",
			})
		}

		var user models.User
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Invalid token",
			})
		}

		c.Locals(accountKey, &user)
		return c.Next()
	}
}

// Account returns the DB-backed user stored by LoadAccount.
func Account(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(accountKey).(*models.User)
	return user
}
