// file: internals/route/base_routes.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "kampusku_backend/internals/helpers"
)

var startTime = time.Now()

// BaseRoutes: endpoint publik tanpa auth.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.Success(c, "Kampusku API aktif 🚀", fiber.Map{
			"version": "1.0.0",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "error"
		} else if err := sqlDB.Ping(); err != nil {
			dbStatus = "error"
		}
		return helper.Success(c, "OK", fiber.Map{
			"database": dbStatus,
			"uptime":   time.Since(startTime).Round(time.Second).String(),
		})
	})
}
