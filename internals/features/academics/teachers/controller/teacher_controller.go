// file: internals/features/academics/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/teachers/dto"
	"kampusku_backend/internals/features/academics/teachers/model"
	helper "kampusku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTeacherController(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validate: v}
}

func (ctl *TeacherController) List(c *fiber.Ctx) error {
	var rows []model.TeacherModel
	if err := ctl.DB.Order("teacher_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data teacher")
	}

	out := make([]dto.TeacherResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToTeacherResponse(m))
	}
	return helper.Success(c, "OK", out)
}

func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.TeacherModel
	if err := ctl.DB.First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data teacher")
	}
	return helper.Success(c, "OK", dto.ToTeacherResponse(m))
}

func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.TeacherModel{
		TeacherName:       req.TeacherName,
		TeacherEmail:      req.TeacherEmail,
		TeacherPhone:      req.TeacherPhone,
		TeacherDepartment: req.TeacherDepartment,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Email teacher sudah digunakan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan teacher")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher dibuat", dto.ToTeacherResponse(m))
}

func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.TeacherModel
	if err := ctl.DB.First(&m, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data teacher")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field untuk diupdate")
	}
	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Email teacher sudah digunakan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah teacher")
	}
	return helper.Success(c, "Teacher diperbarui", dto.ToTeacherResponse(m))
}

// Delete: subjects/schedule/grades milik teacher ikut lewat FK cascade.
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Delete(&model.TeacherModel{}, "teacher_id = ?", id)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus teacher")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
	}
	return helper.Success(c, "Teacher dihapus", fiber.Map{"deleted": true})
}
