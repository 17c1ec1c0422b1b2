// file: internals/features/grades/model/grade_model.go
package model

import (
	"time"

	subjectModel "kampusku_backend/internals/features/academics/subjects/model"
	teacherModel "kampusku_backend/internals/features/academics/teachers/model"
	userModel "kampusku_backend/internals/features/users/user/model"
)

/* =======================================================
   Enum grade type
   ======================================================= */

const (
	GradeTypeExam       = "exam"
	GradeTypeTest       = "test"
	GradeTypeHomework   = "homework"
	GradeTypeProject    = "project"
	GradeTypeAttendance = "attendance"
)

/* =======================================================
   GradeModel — map ke tabel grades
   Skor 1..5 (CHECK constraint + validasi dto).
   ======================================================= */

type GradeModel struct {
	GradeID          int       `json:"grade_id" gorm:"primaryKey;autoIncrement;column:grade_id"`
	GradeStudentID   int       `json:"grade_student_id" gorm:"not null;index;column:grade_student_id"`
	GradeSubjectID   int       `json:"grade_subject_id" gorm:"not null;index;column:grade_subject_id"`
	GradeTeacherID   int       `json:"grade_teacher_id" gorm:"not null;index;column:grade_teacher_id"`
	GradeScore       int       `json:"grade_score" gorm:"not null;check:grade_score_range,grade_score >= 1 AND grade_score <= 5;column:grade_score"`
	GradeType        string    `json:"grade_type" gorm:"type:varchar(20);not null;column:grade_type"`
	GradeDescription *string   `json:"grade_description,omitempty" gorm:"type:text;column:grade_description"`
	GradeDate        string    `json:"grade_date" gorm:"type:varchar(10);not null;column:grade_date"`
	GradeCreatedAt   time.Time `json:"grade_created_at" gorm:"column:grade_created_at;not null;autoCreateTime"`

	// FK: hapus student/subject/teacher → nilai ikut terhapus
	Student *userModel.UserModel       `json:"-" gorm:"foreignKey:GradeStudentID;references:UserID;constraint:OnDelete:CASCADE"`
	Subject *subjectModel.SubjectModel `json:"-" gorm:"foreignKey:GradeSubjectID;references:SubjectID;constraint:OnDelete:CASCADE"`
	Teacher *teacherModel.TeacherModel `json:"-" gorm:"foreignKey:GradeTeacherID;references:TeacherID;constraint:OnDelete:CASCADE"`
}

func (GradeModel) TableName() string {
	return "grades"
}
