// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ctl.DB, c)
}

// POST /auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ctl.DB, c)
}

// POST /auth/login-google
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return service.LoginGoogle(ctl.DB, c)
}

// GET /auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	return service.Me(ctl.DB, c)
}
