// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"kampusku_backend/internals/configs"
)

// AuthMiddleware memverifikasi Bearer JWT dan menaruh klaim
// {user_id, user_email, user_role, group_id, teacher_id} ke Locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, ok := extractBearerToken(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - No token provided")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token invalid or expired")
		}

		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

// Ambil token dari Authorization header, fallback ke cookie.
func extractBearerToken(c *fiber.Ctx) (string, bool) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if token != "" {
			return token, true
		}
	}
	if cookie := strings.TrimSpace(c.Cookies("access_token")); cookie != "" {
		return cookie, true
	}
	return "", false
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if id, ok := claimInt(claims, "id"); ok {
		c.Locals("user_id", id)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals("user_email", email)
	}
	if role, ok := claims["role"].(string); ok {
		c.Locals("user_role", role)
	}
	// group_id / teacher_id boleh null di token
	if gid, ok := claimInt(claims, "group_id"); ok {
		c.Locals("group_id", gid)
	}
	if tid, ok := claimInt(claims, "teacher_id"); ok {
		c.Locals("teacher_id", tid)
	}
}

// Angka JSON di MapClaims selalu float64.
func claimInt(claims jwt.MapClaims, key string) (int, bool) {
	switch v := claims[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
