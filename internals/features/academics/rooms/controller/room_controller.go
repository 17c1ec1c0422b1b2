// file: internals/features/academics/rooms/controller/room_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/academics/rooms/dto"
	"kampusku_backend/internals/features/academics/rooms/model"
	helper "kampusku_backend/internals/helpers"
)

type RoomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRoomController(db *gorm.DB, v *validator.Validate) *RoomController {
	return &RoomController{DB: db, Validate: v}
}

func (ctl *RoomController) List(c *fiber.Ctx) error {
	var rows []model.RoomModel
	if err := ctl.DB.Order("room_name ASC").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data room")
	}

	out := make([]dto.RoomResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToRoomResponse(m))
	}
	return helper.Success(c, "OK", out)
}

func (ctl *RoomController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.RoomModel
	if err := ctl.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Room tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data room")
	}
	return helper.Success(c, "OK", dto.ToRoomResponse(m))
}

func (ctl *RoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.RoomModel{
		RoomName:        req.RoomName,
		RoomCapacity:    req.RoomCapacity,
		RoomDescription: req.RoomDescription,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Nama room sudah digunakan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan room")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Room dibuat", dto.ToRoomResponse(m))
}

func (ctl *RoomController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.RoomModel
	if err := ctl.DB.First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Room tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data room")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field untuk diupdate")
	}
	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Nama room sudah digunakan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah room")
	}
	return helper.Success(c, "Room diperbarui", dto.ToRoomResponse(m))
}

// Delete: entri jadwal di room ini ikut lewat FK cascade.
func (ctl *RoomController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Delete(&model.RoomModel{}, "room_id = ?", id)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus room")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Room tidak ditemukan")
	}
	return helper.Success(c, "Room dihapus", fiber.Map{"deleted": true})
}
