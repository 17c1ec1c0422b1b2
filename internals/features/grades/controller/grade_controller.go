// file: internals/features/grades/controller/grade_controller.go
package controller

import (
	"context"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/grades/dto"
	"kampusku_backend/internals/features/grades/model"
	"kampusku_backend/internals/features/grades/policy"
	helper "kampusku_backend/internals/helpers"
	authHelper "kampusku_backend/internals/helpers/auth"
)

type GradeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGradeController(db *gorm.DB, v *validator.Validate) *GradeController {
	return &GradeController{DB: db, Validate: v}
}

const gradeSelect = `g.grade_id, g.grade_student_id, g.grade_subject_id, g.grade_teacher_id,
	g.grade_score, g.grade_type, g.grade_description, g.grade_date, g.grade_created_at,
	subjects.subject_name AS subject_name,
	teachers.teacher_name AS teacher_name,
	users.user_name AS student_name`

func (ctl *GradeController) gradeQuery(ctx context.Context) *gorm.DB {
	return ctl.DB.WithContext(ctx).Table("grades AS g").
		Select(gradeSelect).
		Joins("JOIN subjects ON subjects.subject_id = g.grade_subject_id").
		Joins("JOIN teachers ON teachers.teacher_id = g.grade_teacher_id").
		Joins("JOIN users ON users.user_id = g.grade_student_id")
}

/* =======================================================
   READ
   ======================================================= */

// ByStudent: GET /api/grades/student/:id
// Teacher boleh lihat nilai student mana pun (tanpa cek subject,
// asimetri yang dipertahankan); student hanya dirinya sendiri.
func (ctl *GradeController) ByStudent(c *fiber.Ctx) error {
	studentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ident, err := authHelper.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := policy.CanViewStudentGrades(ident, studentID); err != nil {
		return helper.FromFiberError(c, err)
	}

	rows := make([]dto.GradeItemResponse, 0)
	if err := ctl.gradeQuery(c.UserContext()).
		Where("g.grade_student_id = ?", studentID).
		Order("g.grade_date DESC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	return helper.Success(c, "OK", rows)
}

// ByTeacher: GET /api/grades/teacher/:id
func (ctl *GradeController) ByTeacher(c *fiber.Ctx) error {
	teacherID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ident, err := authHelper.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := policy.CanViewTeacherGrades(ident, teacherID); err != nil {
		return helper.FromFiberError(c, err)
	}

	rows := make([]dto.GradeItemResponse, 0)
	if err := ctl.gradeQuery(c.UserContext()).
		Where("g.grade_teacher_id = ?", teacherID).
		Order("g.grade_date DESC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	return helper.Success(c, "OK", rows)
}

// All: GET /api/grades/all (admin only)
func (ctl *GradeController) All(c *fiber.Ctx) error {
	ident, err := authHelper.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := policy.CanViewAllGrades(ident); err != nil {
		return helper.FromFiberError(c, err)
	}

	rows := make([]dto.GradeItemResponse, 0)
	if err := ctl.gradeQuery(c.UserContext()).
		Order("g.grade_date DESC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	return helper.Success(c, "OK", rows)
}

/* =======================================================
   WRITE
   ======================================================= */

func (ctl *GradeController) Create(c *fiber.Ctx) error {
	ident, err := authHelper.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := policy.CanCreateGrade(ident, req.GradeTeacherID); err != nil {
		return helper.FromFiberError(c, err)
	}

	m := model.GradeModel{
		GradeStudentID:   req.GradeStudentID,
		GradeSubjectID:   req.GradeSubjectID,
		GradeTeacherID:   req.GradeTeacherID,
		GradeScore:       req.GradeScore,
		GradeType:        req.GradeType,
		GradeDescription: req.GradeDescription,
		GradeDate:        req.GradeDate,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Referensi student/subject/teacher tidak ditemukan")
		}
		if helper.IsCheckViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Nilai harus di rentang 1..5")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan nilai")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Nilai ditambahkan", m)
}

// Update: baris di-fetch dulu — baris tidak ada = 404,
// baris ada tapi bukan milik caller = 403.
func (ctl *GradeController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ident, err := authHelper.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateGradeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.GradeModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "grade_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}

	if err := policy.CanMutateGrade(ident, m.GradeTeacherID); err != nil {
		return helper.FromFiberError(c, err)
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field untuk diupdate")
	}
	if err := ctl.DB.WithContext(c.UserContext()).Model(&m).Updates(updates).Error; err != nil {
		if helper.IsCheckViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Nilai harus di rentang 1..5")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah nilai")
	}
	return helper.Success(c, "Nilai diperbarui", m)
}

// Delete: urutan sama dengan Update (404 dulu, baru 403).
func (ctl *GradeController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	ident, err := authHelper.GetIdentity(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.GradeModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&m, "grade_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Nilai tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}

	if err := policy.CanMutateGrade(ident, m.GradeTeacherID); err != nil {
		return helper.FromFiberError(c, err)
	}

	if err := ctl.DB.WithContext(c.UserContext()).Delete(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus nilai")
	}
	return helper.Success(c, "Nilai dihapus", fiber.Map{"deleted": true})
}
