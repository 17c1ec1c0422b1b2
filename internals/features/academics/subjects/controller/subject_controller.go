// file: internals/features/academics/subjects/controller/subject_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/subjects/dto"
	"kampusku_backend/internals/features/academics/subjects/model"
	helper "kampusku_backend/internals/helpers"
)

type SubjectController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSubjectController(db *gorm.DB, v *validator.Validate) *SubjectController {
	return &SubjectController{DB: db, Validate: v}
}

const subjectSelect = `subjects.subject_id, subjects.subject_name, subjects.subject_teacher_id,
	subjects.subject_description, subjects.subject_created_at, teachers.teacher_name AS teacher_name`

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	var rows []dto.SubjectResponse
	err := ctl.DB.Table("subjects").
		Select(subjectSelect).
		Joins("JOIN teachers ON teachers.teacher_id = subjects.subject_teacher_id").
		Order("subjects.subject_name ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}
	return helper.Success(c, "OK", rows)
}

func (ctl *SubjectController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var row dto.SubjectResponse
	tx := ctl.DB.Table("subjects").
		Select(subjectSelect).
		Joins("JOIN teachers ON teachers.teacher_id = subjects.subject_teacher_id").
		Where("subjects.subject_id = ?", id).
		Scan(&row)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Subject tidak ditemukan")
	}
	return helper.Success(c, "OK", row)
}

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.SubjectModel{
		SubjectName:        req.SubjectName,
		SubjectTeacherID:   req.SubjectTeacherID,
		SubjectDescription: req.SubjectDescription,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Teacher tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan subject")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject dibuat", m)
}

func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.SubjectModel
	if err := ctl.DB.First(&m, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data subject")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field untuk diupdate")
	}
	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Teacher tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah subject")
	}
	return helper.Success(c, "Subject diperbarui", m)
}

// Delete: entri jadwal & nilai pada subject ini ikut lewat FK cascade.
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Delete(&model.SubjectModel{}, "subject_id = ?", id)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus subject")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Subject tidak ditemukan")
	}
	return helper.Success(c, "Subject dihapus", fiber.Map{"deleted": true})
}
