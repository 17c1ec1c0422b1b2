// file: internals/features/academics/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"
)

type CreateSubjectRequest struct {
	SubjectName        string  `json:"subject_name" validate:"required,min=2,max=255"`
	SubjectTeacherID   int     `json:"subject_teacher_id" validate:"required,min=1"`
	SubjectDescription *string `json:"subject_description,omitempty" validate:"omitempty,max=2000"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.SubjectName = strings.TrimSpace(r.SubjectName)
}

type UpdateSubjectRequest struct {
	SubjectName        *string `json:"subject_name,omitempty" validate:"omitempty,min=2,max=255"`
	SubjectTeacherID   *int    `json:"subject_teacher_id,omitempty" validate:"omitempty,min=1"`
	SubjectDescription *string `json:"subject_description,omitempty" validate:"omitempty,max=2000"`
}

func (r *UpdateSubjectRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.SubjectName != nil {
		up["subject_name"] = strings.TrimSpace(*r.SubjectName)
	}
	if r.SubjectTeacherID != nil {
		up["subject_teacher_id"] = *r.SubjectTeacherID
	}
	if r.SubjectDescription != nil {
		up["subject_description"] = r.SubjectDescription
	}
	return up
}

// SubjectResponse di-scan langsung dari join subjects × teachers.
type SubjectResponse struct {
	SubjectID          int       `json:"subject_id" gorm:"column:subject_id"`
	SubjectName        string    `json:"subject_name" gorm:"column:subject_name"`
	SubjectTeacherID   int       `json:"subject_teacher_id" gorm:"column:subject_teacher_id"`
	SubjectDescription *string   `json:"subject_description,omitempty" gorm:"column:subject_description"`
	SubjectCreatedAt   time.Time `json:"subject_created_at" gorm:"column:subject_created_at"`
	TeacherName        string    `json:"teacher_name" gorm:"column:teacher_name"`
}
