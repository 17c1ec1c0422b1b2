// file: internals/features/schedules/service/schedule_service.go
package service

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/schedules/dto"
)

/* =======================================================
   ScheduleService — query engine jadwal.

   Mulai dari full join schedule × subject × teacher × room ×
   group, dipersempit oleh filter equality yang terisi, lalu
   diurutkan kronologis (date ASC, time_start ASC; keduanya
   string zero-padded jadi ORDER BY leksikografis cukup).
   Read-only, tanpa pagination.
   ======================================================= */

type ScheduleService struct {
	DB *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

const scheduleSelect = `s.schedule_id, s.schedule_group_id, s.schedule_subject_id,
	s.schedule_teacher_id, s.schedule_room_id, s.schedule_date,
	s.schedule_time_start, s.schedule_time_end, s.schedule_created_at,
	subjects.subject_name AS subject_name,
	teachers.teacher_name AS teacher_name,
	rooms.room_name AS room_name,
	student_groups.group_name AS group_name`

func (s *ScheduleService) Search(ctx context.Context, f dto.ScheduleFilter) ([]dto.ScheduleItemResponse, error) {
	q := s.DB.WithContext(ctx).
		Table("schedule_entries AS s").
		Select(scheduleSelect).
		Joins("JOIN subjects ON subjects.subject_id = s.schedule_subject_id").
		Joins("JOIN teachers ON teachers.teacher_id = s.schedule_teacher_id").
		Joins("JOIN rooms ON rooms.room_id = s.schedule_room_id").
		Joins("JOIN student_groups ON student_groups.group_id = s.schedule_group_id")

	conds, args := f.Conditions()
	for i := range conds {
		q = q.Where(conds[i], args[i])
	}

	rows := make([]dto.ScheduleItemResponse, 0)
	err := q.Order("s.schedule_date ASC, s.schedule_time_start ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil jadwal")
	}
	return rows, nil
}
