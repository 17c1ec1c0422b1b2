// file: internals/features/schedules/dto/schedule_dto.go
package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

/* =======================================================
   FILTER — inti dari schedule query engine.

   Setiap field adalah filter equality opsional; filter yang
   nil tidak membatasi apa pun. Semua filter yang terisi
   digabung AND, jadi urutan penerapan tidak berpengaruh.
   ======================================================= */

type ScheduleFilter struct {
	GroupID   *int    `query:"groupId"`
	TeacherID *int    `query:"teacherId"`
	RoomID    *int    `query:"roomId"`
	SubjectID *int    `query:"subjectId"`
	Date      *string `query:"date"`
}

// Validate menolak tanggal yang bukan 'YYYY-MM-DD' sebelum
// filter sampai ke query builder.
func (f ScheduleFilter) Validate() error {
	if f.Date != nil {
		if _, err := time.Parse("2006-01-02", *f.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
	}
	return nil
}

// Conditions menghasilkan pasangan klausa WHERE + argumen untuk
// setiap filter yang terisi. Parameterized, tidak pernah
// di-interpolasi ke string SQL.
func (f ScheduleFilter) Conditions() ([]string, []interface{}) {
	conds := make([]string, 0, 5)
	args := make([]interface{}, 0, 5)

	if f.GroupID != nil {
		conds = append(conds, "s.schedule_group_id = ?")
		args = append(args, *f.GroupID)
	}
	if f.TeacherID != nil {
		conds = append(conds, "s.schedule_teacher_id = ?")
		args = append(args, *f.TeacherID)
	}
	if f.RoomID != nil {
		conds = append(conds, "s.schedule_room_id = ?")
		args = append(args, *f.RoomID)
	}
	if f.SubjectID != nil {
		conds = append(conds, "s.schedule_subject_id = ?")
		args = append(args, *f.SubjectID)
	}
	if f.Date != nil {
		conds = append(conds, "s.schedule_date = ?")
		args = append(args, *f.Date)
	}
	return conds, args
}

/* =======================================================
   REQUEST DTOs (admin create/update)
   ======================================================= */

type CreateScheduleRequest struct {
	ScheduleGroupID   int    `json:"schedule_group_id" validate:"required,min=1"`
	ScheduleSubjectID int    `json:"schedule_subject_id" validate:"required,min=1"`
	ScheduleTeacherID int    `json:"schedule_teacher_id" validate:"required,min=1"`
	ScheduleRoomID    int    `json:"schedule_room_id" validate:"required,min=1"`
	ScheduleDate      string `json:"schedule_date" validate:"required,datetime=2006-01-02"`
	ScheduleTimeStart string `json:"schedule_time_start" validate:"required,datetime=15:04"`
	ScheduleTimeEnd   string `json:"schedule_time_end" validate:"required,datetime=15:04"`
}

type UpdateScheduleRequest struct {
	ScheduleGroupID   *int    `json:"schedule_group_id,omitempty" validate:"omitempty,min=1"`
	ScheduleSubjectID *int    `json:"schedule_subject_id,omitempty" validate:"omitempty,min=1"`
	ScheduleTeacherID *int    `json:"schedule_teacher_id,omitempty" validate:"omitempty,min=1"`
	ScheduleRoomID    *int    `json:"schedule_room_id,omitempty" validate:"omitempty,min=1"`
	ScheduleDate      *string `json:"schedule_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ScheduleTimeStart *string `json:"schedule_time_start,omitempty" validate:"omitempty,datetime=15:04"`
	ScheduleTimeEnd   *string `json:"schedule_time_end,omitempty" validate:"omitempty,datetime=15:04"`
}

func (r *UpdateScheduleRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.ScheduleGroupID != nil {
		up["schedule_group_id"] = *r.ScheduleGroupID
	}
	if r.ScheduleSubjectID != nil {
		up["schedule_subject_id"] = *r.ScheduleSubjectID
	}
	if r.ScheduleTeacherID != nil {
		up["schedule_teacher_id"] = *r.ScheduleTeacherID
	}
	if r.ScheduleRoomID != nil {
		up["schedule_room_id"] = *r.ScheduleRoomID
	}
	if r.ScheduleDate != nil {
		up["schedule_date"] = *r.ScheduleDate
	}
	if r.ScheduleTimeStart != nil {
		up["schedule_time_start"] = *r.ScheduleTimeStart
	}
	if r.ScheduleTimeEnd != nil {
		up["schedule_time_end"] = *r.ScheduleTimeEnd
	}
	return up
}

/* =======================================================
   RESPONSE DTO — baris jadwal + nama-nama hasil join,
   di-scan langsung dari query.
   ======================================================= */

type ScheduleItemResponse struct {
	ScheduleID        int       `json:"schedule_id" gorm:"column:schedule_id"`
	ScheduleGroupID   int       `json:"schedule_group_id" gorm:"column:schedule_group_id"`
	ScheduleSubjectID int       `json:"schedule_subject_id" gorm:"column:schedule_subject_id"`
	ScheduleTeacherID int       `json:"schedule_teacher_id" gorm:"column:schedule_teacher_id"`
	ScheduleRoomID    int       `json:"schedule_room_id" gorm:"column:schedule_room_id"`
	ScheduleDate      string    `json:"schedule_date" gorm:"column:schedule_date"`
	ScheduleTimeStart string    `json:"schedule_time_start" gorm:"column:schedule_time_start"`
	ScheduleTimeEnd   string    `json:"schedule_time_end" gorm:"column:schedule_time_end"`
	ScheduleCreatedAt time.Time `json:"schedule_created_at" gorm:"column:schedule_created_at"`
	SubjectName       string    `json:"subject_name" gorm:"column:subject_name"`
	TeacherName       string    `json:"teacher_name" gorm:"column:teacher_name"`
	RoomName          string    `json:"room_name" gorm:"column:room_name"`
	GroupName         string    `json:"group_name" gorm:"column:group_name"`
}
