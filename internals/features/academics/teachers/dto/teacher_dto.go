// file: internals/features/academics/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"kampusku_backend/internals/features/academics/teachers/model"
)

type CreateTeacherRequest struct {
	TeacherName       string  `json:"teacher_name" validate:"required,min=2,max=255"`
	TeacherEmail      string  `json:"teacher_email" validate:"required,email,max=255"`
	TeacherPhone      *string `json:"teacher_phone,omitempty" validate:"omitempty,max=20"`
	TeacherDepartment string  `json:"teacher_department" validate:"required,min=2,max=255"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.TeacherName = strings.TrimSpace(r.TeacherName)
	r.TeacherEmail = strings.ToLower(strings.TrimSpace(r.TeacherEmail))
	r.TeacherDepartment = strings.TrimSpace(r.TeacherDepartment)
}

type UpdateTeacherRequest struct {
	TeacherName       *string `json:"teacher_name,omitempty" validate:"omitempty,min=2,max=255"`
	TeacherEmail      *string `json:"teacher_email,omitempty" validate:"omitempty,email,max=255"`
	TeacherPhone      *string `json:"teacher_phone,omitempty" validate:"omitempty,max=20"`
	TeacherDepartment *string `json:"teacher_department,omitempty" validate:"omitempty,min=2,max=255"`
}

func (r *UpdateTeacherRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.TeacherName != nil {
		up["teacher_name"] = strings.TrimSpace(*r.TeacherName)
	}
	if r.TeacherEmail != nil {
		up["teacher_email"] = strings.ToLower(strings.TrimSpace(*r.TeacherEmail))
	}
	if r.TeacherPhone != nil {
		up["teacher_phone"] = r.TeacherPhone
	}
	if r.TeacherDepartment != nil {
		up["teacher_department"] = strings.TrimSpace(*r.TeacherDepartment)
	}
	return up
}

type TeacherResponse struct {
	TeacherID         int       `json:"teacher_id"`
	TeacherName       string    `json:"teacher_name"`
	TeacherEmail      string    `json:"teacher_email"`
	TeacherPhone      *string   `json:"teacher_phone,omitempty"`
	TeacherDepartment string    `json:"teacher_department"`
	TeacherCreatedAt  time.Time `json:"teacher_created_at"`
}

func ToTeacherResponse(m model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:         m.TeacherID,
		TeacherName:       m.TeacherName,
		TeacherEmail:      m.TeacherEmail,
		TeacherPhone:      m.TeacherPhone,
		TeacherDepartment: m.TeacherDepartment,
		TeacherCreatedAt:  m.TeacherCreatedAt,
	}
}
