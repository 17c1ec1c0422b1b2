// file: internals/route/details/grade_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	gradeController "kampusku_backend/internals/features/grades/controller"
)

// GradeRoutes: cek kepemilikan per-baris ada di controller
// (butuh identity + isi baris), bukan di middleware role.
func GradeRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := gradeController.NewGradeController(db, v)

	grades := api.Group("/grades")
	grades.Get("/all", ctl.All)
	grades.Get("/student/:id", ctl.ByStudent)
	grades.Get("/teacher/:id", ctl.ByTeacher)
	grades.Post("/", ctl.Create)
	grades.Put("/:id", ctl.Update)
	grades.Delete("/:id", ctl.Delete)
}
