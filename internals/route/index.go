// file: internals/route/index.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/middlewares/auth"
	"kampusku_backend/internals/route/details"
)

// SetupRoutes memasang seluruh route aplikasi.
// Semua route /api dilindungi AuthMiddleware; pembatasan role
// per-endpoint ada di masing-masing file route.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	validate := validator.New()

	BaseRoutes(app, db)
	details.AuthRoutes(app, db)

	api := app.Group("/api", auth.AuthMiddleware())
	details.AcademicRoutes(api, db, validate)
	details.ScheduleRoutes(api, db, validate)
	details.GradeRoutes(api, db, validate)
	details.UserRoutes(api, db, validate)
}
