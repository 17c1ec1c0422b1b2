// file: internals/features/academics/groups/controller/group_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/groups/dto"
	"kampusku_backend/internals/features/academics/groups/model"
	helper "kampusku_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type GroupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGroupController(db *gorm.DB, v *validator.Validate) *GroupController {
	return &GroupController{DB: db, Validate: v}
}

func (ctl *GroupController) List(c *fiber.Ctx) error {
	var rows []model.GroupModel
	if err := ctl.DB.Order("group_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data group")
	}

	out := make([]dto.GroupResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToGroupResponse(m))
	}
	return helper.Success(c, "OK", out)
}

func (ctl *GroupController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.GroupModel
	if err := ctl.DB.First(&m, "group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Group tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data group")
	}
	return helper.Success(c, "OK", dto.ToGroupResponse(m))
}

func (ctl *GroupController) Create(c *fiber.Ctx) error {
	var req dto.CreateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.GroupModel{
		GroupName:        req.GroupName,
		GroupDescription: req.GroupDescription,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Nama group sudah digunakan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan group")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Group dibuat", dto.ToGroupResponse(m))
}

func (ctl *GroupController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.GroupModel
	if err := ctl.DB.First(&m, "group_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Group tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data group")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field untuk diupdate")
	}
	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Nama group sudah digunakan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah group")
	}
	return helper.Success(c, "Group diperbarui", dto.ToGroupResponse(m))
}

// Delete: hard delete; schedule & link user ikut lewat FK cascade / SET NULL.
func (ctl *GroupController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Delete(&model.GroupModel{}, "group_id = ?", id)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus group")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Group tidak ditemukan")
	}
	return helper.Success(c, "Group dihapus", fiber.Map{"deleted": true})
}
