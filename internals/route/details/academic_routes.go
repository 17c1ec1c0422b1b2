// file: internals/route/details/academic_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	groupController "kampusku_backend/internals/features/academics/groups/controller"
	roomController "kampusku_backend/internals/features/academics/rooms/controller"
	subjectController "kampusku_backend/internals/features/academics/subjects/controller"
	teacherController "kampusku_backend/internals/features/academics/teachers/controller"
	authMW "kampusku_backend/internals/middlewares/auth"
)

// AcademicRoutes: data referensi (groups, teachers, rooms, subjects).
// Semua role boleh baca; tulis hanya admin.
func AcademicRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	adminOnly := func(feature string) fiber.Handler {
		return authMW.OnlyRoles(constants.RoleErrorAdmin(feature), constants.AdminOnly...)
	}

	groupCtl := groupController.NewGroupController(db, v)
	groups := api.Group("/groups")
	groups.Get("/", groupCtl.List)
	groups.Get("/:id", groupCtl.GetByID)
	groups.Post("/", adminOnly("kelola group"), groupCtl.Create)
	groups.Put("/:id", adminOnly("kelola group"), groupCtl.Update)
	groups.Delete("/:id", adminOnly("kelola group"), groupCtl.Delete)

	teacherCtl := teacherController.NewTeacherController(db, v)
	teachers := api.Group("/teachers")
	teachers.Get("/", teacherCtl.List)
	teachers.Get("/:id", teacherCtl.GetByID)
	teachers.Post("/", adminOnly("kelola teacher"), teacherCtl.Create)
	teachers.Put("/:id", adminOnly("kelola teacher"), teacherCtl.Update)
	teachers.Delete("/:id", adminOnly("kelola teacher"), teacherCtl.Delete)

	roomCtl := roomController.NewRoomController(db, v)
	rooms := api.Group("/rooms")
	rooms.Get("/", roomCtl.List)
	rooms.Get("/:id", roomCtl.GetByID)
	rooms.Post("/", adminOnly("kelola room"), roomCtl.Create)
	rooms.Put("/:id", adminOnly("kelola room"), roomCtl.Update)
	rooms.Delete("/:id", adminOnly("kelola room"), roomCtl.Delete)

	subjectCtl := subjectController.NewSubjectController(db, v)
	subjects := api.Group("/subjects")
	subjects.Get("/", subjectCtl.List)
	subjects.Get("/:id", subjectCtl.GetByID)
	subjects.Post("/", adminOnly("kelola subject"), subjectCtl.Create)
	subjects.Put("/:id", adminOnly("kelola subject"), subjectCtl.Update)
	subjects.Delete("/:id", adminOnly("kelola subject"), subjectCtl.Delete)
}
