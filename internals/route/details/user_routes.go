// file: internals/route/details/user_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	userController "kampusku_backend/internals/features/users/user/controller"
	authMW "kampusku_backend/internals/middlewares/auth"
)

// UserRoutes: manajemen user penuh hanya admin; daftar student
// terbuka untuk teacher & admin.
func UserRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := userController.NewUserController(db, v)
	adminOnly := authMW.OnlyRoles(constants.RoleErrorAdmin("kelola user"), constants.AdminOnly...)
	staffOnly := authMW.OnlyRoles(constants.RoleErrorStaff("daftar student"), constants.StaffAndAbove...)

	api.Get("/students", staffOnly, ctl.ListStudents)

	users := api.Group("/users", adminOnly)
	users.Get("/", ctl.List)
	users.Get("/:id", ctl.GetByID)
	users.Post("/", ctl.Create)
	users.Put("/:id", ctl.Update)
	users.Delete("/:id", ctl.Delete)
}
