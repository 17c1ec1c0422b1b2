// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"
	"time"

	"kampusku_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs (admin)
   ======================================================= */

type CreateUserRequest struct {
	UserName      string `json:"user_name" validate:"required,min=2,max=255"`
	UserEmail     string `json:"user_email" validate:"required,email,max=255"`
	UserPassword  string `json:"user_password" validate:"required,min=6,max=72"`
	UserRole      string `json:"user_role" validate:"required,oneof=admin teacher student"`
	UserGroupID   *int   `json:"user_group_id,omitempty" validate:"omitempty,min=1"`
	UserTeacherID *int   `json:"user_teacher_id,omitempty" validate:"omitempty,min=1"`
}

func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

type UpdateUserRequest struct {
	UserName      *string `json:"user_name,omitempty" validate:"omitempty,min=2,max=255"`
	UserEmail     *string `json:"user_email,omitempty" validate:"omitempty,email,max=255"`
	UserPassword  *string `json:"user_password,omitempty" validate:"omitempty,min=6,max=72"`
	UserRole      *string `json:"user_role,omitempty" validate:"omitempty,oneof=admin teacher student"`
	UserGroupID   *int    `json:"user_group_id,omitempty" validate:"omitempty,min=1"`
	UserTeacherID *int    `json:"user_teacher_id,omitempty" validate:"omitempty,min=1"`
}

// BuildUpdateMap TIDAK memasukkan password — hashing dilakukan
// di controller sebelum masuk map.
func (r *UpdateUserRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.UserName != nil {
		up["user_name"] = strings.TrimSpace(*r.UserName)
	}
	if r.UserEmail != nil {
		up["user_email"] = strings.ToLower(strings.TrimSpace(*r.UserEmail))
	}
	if r.UserRole != nil {
		up["user_role"] = *r.UserRole
	}
	if r.UserGroupID != nil {
		up["user_group_id"] = *r.UserGroupID
	}
	if r.UserTeacherID != nil {
		up["user_teacher_id"] = *r.UserTeacherID
	}
	return up
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	UserID        int       `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserGroupID   *int      `json:"user_group_id,omitempty"`
	UserTeacherID *int      `json:"user_teacher_id,omitempty"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func ToUserResponse(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserGroupID:   m.UserGroupID,
		UserTeacherID: m.UserTeacherID,
		UserCreatedAt: m.UserCreatedAt,
	}
}

// StudentItemResponse — daftar student + nama group, di-scan dari join.
type StudentItemResponse struct {
	UserID      int     `json:"user_id" gorm:"column:user_id"`
	UserName    string  `json:"user_name" gorm:"column:user_name"`
	UserEmail   string  `json:"user_email" gorm:"column:user_email"`
	UserGroupID *int    `json:"user_group_id,omitempty" gorm:"column:user_group_id"`
	GroupName   *string `json:"group_name,omitempty" gorm:"column:group_name"`
}
