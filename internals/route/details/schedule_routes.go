// file: internals/route/details/schedule_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	scheduleController "kampusku_backend/internals/features/schedules/controller"
	authMW "kampusku_backend/internals/middlewares/auth"
)

// ScheduleRoutes: pencarian jadwal untuk semua role; tulis admin.
func ScheduleRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := scheduleController.NewScheduleController(db, v)
	adminOnly := authMW.OnlyRoles(constants.RoleErrorAdmin("kelola jadwal"), constants.AdminOnly...)

	sched := api.Group("/schedule")
	sched.Get("/", ctl.Search)
	sched.Get("/all", adminOnly, ctl.All)
	sched.Get("/group/:groupId", ctl.ByGroup)
	sched.Get("/teacher/:teacherId", ctl.ByTeacher)
	sched.Post("/", adminOnly, ctl.Create)
	sched.Put("/:id", adminOnly, ctl.Update)
	sched.Delete("/:id", adminOnly, ctl.Delete)
}
