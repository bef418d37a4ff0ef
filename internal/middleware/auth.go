package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/smartcity/complaint-backend/internal/config"
	"github.com/smartcity/complaint-backend/internal/dto"
)

// JWTProtected rejects requests without a valid bearer token. Authentication
// failures are 401, distinct from the 403 the role gates return.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Invalid or expired token",
			})
		},
	})
}
