// file: internals/middlewares/auth/role_middleware_test.go
package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/constants"
)

// newRoleApp membangun app kecil: pre-handler yang mengisi Locals
// (menggantikan AuthMiddleware) lalu route yang dijaga OnlyRoles.
func newRoleApp(role string, allowed ...string) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("user_role", role)
		}
		return c.Next()
	})
	app.Get("/guarded", OnlyRoles("Khusus role tertentu.", allowed...), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestOnlyRolesAllowsListedRole(t *testing.T) {
	app := newRoleApp(constants.RoleAdmin, constants.AdminOnly...)
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOnlyRolesRejectsOtherRole(t *testing.T) {
	app := newRoleApp(constants.RoleStudent, constants.AdminOnly...)
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOnlyRolesStaffList(t *testing.T) {
	for role, want := range map[string]int{
		constants.RoleAdmin:   fiber.StatusOK,
		constants.RoleTeacher: fiber.StatusOK,
		constants.RoleStudent: fiber.StatusForbidden,
	} {
		app := newRoleApp(role, constants.StaffAndAbove...)
		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, "role %s", role)
	}
}

// Tanpa Locals role (request lolos tanpa AuthMiddleware) → 401.
func TestOnlyRolesMissingRole(t *testing.T) {
	app := newRoleApp("", constants.AdminOnly...)
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
