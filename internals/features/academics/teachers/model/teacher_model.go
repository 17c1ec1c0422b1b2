// file: internals/features/academics/teachers/model/teacher_model.go
package model

import "time"

/* =======================================================
   TeacherModel — map ke tabel teachers
   ======================================================= */

type TeacherModel struct {
	TeacherID         int       `json:"teacher_id" gorm:"primaryKey;autoIncrement;column:teacher_id"`
	TeacherName       string    `json:"teacher_name" gorm:"type:varchar(255);not null;column:teacher_name"`
	TeacherEmail      string    `json:"teacher_email" gorm:"type:varchar(255);not null;uniqueIndex;column:teacher_email"`
	TeacherPhone      *string   `json:"teacher_phone,omitempty" gorm:"type:varchar(20);column:teacher_phone"`
	TeacherDepartment string    `json:"teacher_department" gorm:"type:varchar(255);not null;column:teacher_department"`
	TeacherCreatedAt  time.Time `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
