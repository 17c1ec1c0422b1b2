// file: internals/features/schedules/controller/schedule_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/schedules/dto"
	"kampusku_backend/internals/features/schedules/model"
	"kampusku_backend/internals/features/schedules/service"
	helper "kampusku_backend/internals/helpers"
)

type ScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.ScheduleService
}

func NewScheduleController(db *gorm.DB, v *validator.Validate) *ScheduleController {
	return &ScheduleController{DB: db, Validate: v, Service: service.NewScheduleService(db)}
}

/* =======================================================
   READ — filter engine
   ======================================================= */

// Search: GET /api/schedule?groupId&teacherId&roomId&subjectId&date
func (ctl *ScheduleController) Search(c *fiber.Ctx) error {
	var f dto.ScheduleFilter
	if err := c.QueryParser(&f); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := f.Validate(); err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := ctl.Service.Search(c.UserContext(), f)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", rows)
}

// ByGroup: GET /api/schedule/group/:groupId
func (ctl *ScheduleController) ByGroup(c *fiber.Ctx) error {
	groupID, err := strconv.Atoi(c.Params("groupId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rows, err := ctl.Service.Search(c.UserContext(), dto.ScheduleFilter{GroupID: &groupID})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", rows)
}

// ByTeacher: GET /api/schedule/teacher/:teacherId
func (ctl *ScheduleController) ByTeacher(c *fiber.Ctx) error {
	teacherID, err := strconv.Atoi(c.Params("teacherId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	rows, err := ctl.Service.Search(c.UserContext(), dto.ScheduleFilter{TeacherID: &teacherID})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", rows)
}

// All: GET /api/schedule/all (admin only, di-guard di route)
func (ctl *ScheduleController) All(c *fiber.Ctx) error {
	rows, err := ctl.Service.Search(c.UserContext(), dto.ScheduleFilter{})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "OK", rows)
}

/* =======================================================
   WRITE — admin only (di-guard di route)

   Tidak ada validasi teacher == pemilik subject dan tidak ada
   deteksi bentrok; penjadwalan sepenuhnya dipercayakan ke admin.
   ======================================================= */

func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.ScheduleEntryModel{
		ScheduleGroupID:   req.ScheduleGroupID,
		ScheduleSubjectID: req.ScheduleSubjectID,
		ScheduleTeacherID: req.ScheduleTeacherID,
		ScheduleRoomID:    req.ScheduleRoomID,
		ScheduleDate:      req.ScheduleDate,
		ScheduleTimeStart: req.ScheduleTimeStart,
		ScheduleTimeEnd:   req.ScheduleTimeEnd,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Referensi group/subject/teacher/room tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan entri jadwal")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Entri jadwal dibuat", m)
}

func (ctl *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.ScheduleEntryModel
	if err := ctl.DB.First(&m, "schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Entri jadwal tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil entri jadwal")
	}

	updates := req.BuildUpdateMap()
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field untuk diupdate")
	}
	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Referensi group/subject/teacher/room tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah entri jadwal")
	}
	return helper.Success(c, "Entri jadwal diperbarui", m)
}

func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	tx := ctl.DB.Delete(&model.ScheduleEntryModel{}, "schedule_id = ?", id)
	if tx.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus entri jadwal")
	}
	if tx.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Entri jadwal tidak ditemukan")
	}
	return helper.Success(c, "Entri jadwal dihapus", fiber.Map{"deleted": true})
}
