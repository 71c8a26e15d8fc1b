package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/config"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// OptionalJWT parses a bearer token when one is sent. Requests without a
// token, or with an invalid one, continue anonymously.
func OptionalJWT(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		Filter: func(c *fiber.Ctx) bool {
			return c.Get(fiber.HeaderAuthorization) == ""
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			c.Locals("user", nil)
			return c.Next()
		},
	})
}

func claims(c *fiber.Ctx) jwt.MapClaims {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil
	}
	mc, _ := token.Claims.(jwt.MapClaims)
	return mc
}

// ClaimsEmail returns the email of the authenticated caller, or "".
func ClaimsEmail(c *fiber.Ctx) string {
	email, _ := claims(c)["email"].(string)
	return email
}

// ClaimsRole returns the role claim of the authenticated caller, or "".
func ClaimsRole(c *fiber.Ctx) string {
	role, _ := claims(c)["role"].(string)
	return role
}
