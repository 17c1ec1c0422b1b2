// file: internals/features/grades/dto/grade_dto.go
package dto

import (
	"time"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateGradeRequest struct {
	GradeStudentID   int     `json:"grade_student_id" validate:"required,min=1"`
	GradeSubjectID   int     `json:"grade_subject_id" validate:"required,min=1"`
	GradeTeacherID   int     `json:"grade_teacher_id" validate:"required,min=1"`
	GradeScore       int     `json:"grade_score" validate:"required,min=1,max=5"`
	GradeType        string  `json:"grade_type" validate:"required,oneof=exam test homework project attendance"`
	GradeDescription *string `json:"grade_description,omitempty" validate:"omitempty,max=2000"`
	GradeDate        string  `json:"grade_date" validate:"required,datetime=2006-01-02"`
}

type UpdateGradeRequest struct {
	GradeScore       *int    `json:"grade_score,omitempty" validate:"omitempty,min=1,max=5"`
	GradeType        *string `json:"grade_type,omitempty" validate:"omitempty,oneof=exam test homework project attendance"`
	GradeDescription *string `json:"grade_description,omitempty" validate:"omitempty,max=2000"`
	GradeDate        *string `json:"grade_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateGradeRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.GradeScore != nil {
		up["grade_score"] = *r.GradeScore
	}
	if r.GradeType != nil {
		up["grade_type"] = *r.GradeType
	}
	if r.GradeDescription != nil {
		up["grade_description"] = r.GradeDescription
	}
	if r.GradeDate != nil {
		up["grade_date"] = *r.GradeDate
	}
	return up
}

/* =======================================================
   RESPONSE DTO — baris grade + nama-nama hasil join,
   di-scan langsung dari query.
   ======================================================= */

type GradeItemResponse struct {
	GradeID          int       `json:"grade_id" gorm:"column:grade_id"`
	GradeStudentID   int       `json:"grade_student_id" gorm:"column:grade_student_id"`
	GradeSubjectID   int       `json:"grade_subject_id" gorm:"column:grade_subject_id"`
	GradeTeacherID   int       `json:"grade_teacher_id" gorm:"column:grade_teacher_id"`
	GradeScore       int       `json:"grade_score" gorm:"column:grade_score"`
	GradeType        string    `json:"grade_type" gorm:"column:grade_type"`
	GradeDescription *string   `json:"grade_description,omitempty" gorm:"column:grade_description"`
	GradeDate        string    `json:"grade_date" gorm:"column:grade_date"`
	GradeCreatedAt   time.Time `json:"grade_created_at" gorm:"column:grade_created_at"`
	SubjectName      string    `json:"subject_name" gorm:"column:subject_name"`
	TeacherName      string    `json:"teacher_name" gorm:"column:teacher_name"`
	StudentName      string    `json:"student_name" gorm:"column:student_name"`
}
