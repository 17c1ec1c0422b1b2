// file: internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"

	userDTO "kampusku_backend/internals/features/users/user/dto"
)

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

type RegisterRequest struct {
	UserName      string `json:"user_name" validate:"required,min=2,max=255"`
	UserEmail     string `json:"user_email" validate:"required,email,max=255"`
	UserPassword  string `json:"user_password" validate:"required,min=6,max=72"`
	UserRole      string `json:"user_role" validate:"required,oneof=admin teacher student"`
	UserGroupID   *int   `json:"user_group_id,omitempty" validate:"omitempty,min=1"`
	UserTeacherID *int   `json:"user_teacher_id,omitempty" validate:"omitempty,min=1"`
}

func (r *RegisterRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.UserEmail = strings.ToLower(strings.TrimSpace(r.UserEmail))
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type LoginResponse struct {
	Token string               `json:"token"`
	User  userDTO.UserResponse `json:"user"`
}
