// file: internals/features/schedules/model/schedule_model.go
package model

import (
	"time"

	groupModel "kampusku_backend/internals/features/academics/groups/model"
	roomModel "kampusku_backend/internals/features/academics/rooms/model"
	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	teacherModel "kampusku_backend/internals/features/academics/teachers/model"
)

/* =======================================================
   ScheduleEntryModel — map ke tabel schedule_entries

   Tanggal & jam disimpan sebagai string zero-padded
   ('YYYY-MM-DD', 'HH:MM') sehingga urutan leksikografis ==
   urutan kronologis; format divalidasi di boundary (dto).

   Catatan: schedule_teacher_id TIDAK dipaksa sama dengan
   pemilik subject, dan tidak ada deteksi bentrok
   room/teacher/group — penjadwalan dipercayakan ke admin.
   ======================================================= */

type ScheduleEntryModel struct {
	ScheduleID        int       `json:"schedule_id" gorm:"primaryKey;autoIncrement;column:schedule_id"`
	ScheduleGroupID   int       `json:"schedule_group_id" gorm:"not null;index;column:schedule_group_id"`
	ScheduleSubjectID int       `json:"schedule_subject_id" gorm:"not null;index;column:schedule_subject_id"`
	ScheduleTeacherID int       `json:"schedule_teacher_id" gorm:"not null;index;column:schedule_teacher_id"`
	ScheduleRoomID    int       `json:"schedule_room_id" gorm:"not null;index;column:schedule_room_id"`
	ScheduleDate      string    `json:"schedule_date" gorm:"type:varchar(10);not null;column:schedule_date"`
	ScheduleTimeStart string    `json:"schedule_time_start" gorm:"type:varchar(5);not null;column:schedule_time_start"`
	ScheduleTimeEnd   string    `json:"schedule_time_end" gorm:"type:varchar(5);not null;column:schedule_time_end"`
	ScheduleCreatedAt time.Time `json:"schedule_created_at" gorm:"column:schedule_created_at;not null;autoCreateTime"`

	// FK: hapus referensi → entri jadwal ikut terhapus
	Group   *groupModel.GroupModel     `json:"-" gorm:"foreignKey:ScheduleGroupID;references:GroupID;constraint:OnDelete:CASCADE"`
	Subject *subjectModel.SubjectModel `json:"-" gorm:"foreignKey:ScheduleSubjectID;references:SubjectID;constraint:OnDelete:CASCADE"`
	Teacher *teacherModel.TeacherModel `json:"-" gorm:"foreignKey:ScheduleTeacherID;references:TeacherID;constraint:OnDelete:CASCADE"`
	Room    *roomModel.RoomModel       `json:"-" gorm:"foreignKey:ScheduleRoomID;references:RoomID;constraint:OnDelete:CASCADE"`
}

func (ScheduleEntryModel) TableName() string {
	return "schedule_entries"
}
