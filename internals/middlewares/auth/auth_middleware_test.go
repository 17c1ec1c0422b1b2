// file: internals/middlewares/auth/auth_middleware_test.go
package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/configs"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", AuthMiddleware(), func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(int)
		role, _ := c.Locals("user_role").(string)
		teacherID, _ := c.Locals("teacher_id").(int)
		return c.JSON(fiber.Map{"user_id": userID, "role": role, "teacher_id": teacherID})
	})
	return app
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newAuthApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsBadSignature(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newAuthApp()

	token := signToken(t, "secret-lain", jwt.MapClaims{
		"id": 7, "role": "teacher", "exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newAuthApp()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"id": 7, "role": "teacher", "exp": time.Now().Add(-time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

// Klaim angka dari JSON (float64) harus sampai ke Locals sebagai int.
func TestAuthMiddlewareStoresClaimsToLocals(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newAuthApp()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"id": 7, "email": "guru@kampusku.local", "role": "teacher", "teacher_id": 3,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Fallback cookie access_token saat header Authorization kosong.
func TestAuthMiddlewareAcceptsCookieToken(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newAuthApp()

	token := signToken(t, "test-secret", jwt.MapClaims{
		"id": 7, "role": "student", "exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
