// file: internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	teacherModel "kampusku_backend/internals/features/academics/teachers/model"
)

/* =======================================================
   SubjectModel — map ke tabel subjects
   ======================================================= */

type SubjectModel struct {
	SubjectID          int       `json:"subject_id" gorm:"primaryKey;autoIncrement;column:subject_id"`
	SubjectName        string    `json:"subject_name" gorm:"type:varchar(255);not null;column:subject_name"`
	SubjectTeacherID   int       `json:"subject_teacher_id" gorm:"not null;index;column:subject_teacher_id"`
	SubjectDescription *string   `json:"subject_description,omitempty" gorm:"type:text;column:subject_description"`
	SubjectCreatedAt   time.Time `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`

	// FK: hapus teacher → subjects miliknya ikut terhapus
	Teacher *teacherModel.TeacherModel `json:"-" gorm:"foreignKey:SubjectTeacherID;references:TeacherID;constraint:OnDelete:CASCADE"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
