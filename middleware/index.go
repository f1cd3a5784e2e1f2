package middleware

import (
	"errors"
	"os"
	"strings"

	"cinema_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return utils.ErrorResponse(c, 401, "Missing token", errors.New("no token"))
		}

		claims, err := parseClaims(token)
		if err != nil {
			return utils.ErrorResponse(c, 401, "Invalid token", err)
		}

		c.Locals("userId", claims.userId)
		c.Locals("role", claims.role)
		return c.Next()
	}
}

// AdminOnly phải đứng sau Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals("role").(string); role != "ADMIN" {
			return utils.ErrorResponse(c, 403, "FORBIDDEN", nil)
		}
		return c.Next()
	}
}

func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			c.Locals("userId", uint(0))
			return c.Next()
		}

		claims, err := parseClaims(token)
		if err != nil {
			c.Locals("userId", uint(0))
			return c.Next()
		}

		c.Locals("userId", claims.userId)
		c.Locals("role", claims.role)
		return c.Next()
	}
}

type tokenClaims struct {
	userId uint
	role   string
}

func extractToken(c *fiber.Ctx) string {
	token := c.Cookies("access_token")
	if token == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	return token
}

func parseClaims(token string) (*tokenClaims, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !jwtToken.Valid {
		return nil, err
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("malformed claims")
	}

	userId, _ := claims["userId"].(float64)
	role, _ := claims["role"].(string)
	return &tokenClaims{userId: uint(userId), role: role}, nil
}
