// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "kampusku_backend/internals/features/users/auth/controller"
	"kampusku_backend/internals/middlewares"
	authMW "kampusku_backend/internals/middlewares/auth"
)

// AuthRoutes dipasang di root (tanpa AuthMiddleware), kecuali /me.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := authController.NewAuthController(db)

	auth := app.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	auth.Get("/me", authMW.AuthMiddleware(), ctl.Me)
}
