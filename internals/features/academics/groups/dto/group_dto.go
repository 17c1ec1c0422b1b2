// file: internals/features/academics/groups/dto/group_dto.go
package dto

import (
	"strings"
	"time"

	"kampusku_backend/internals/features/academics/groups/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateGroupRequest struct {
	GroupName        string  `json:"group_name" validate:"required,min=2,max=255"`
	GroupDescription *string `json:"group_description,omitempty" validate:"omitempty,max=2000"`
}

func (r *CreateGroupRequest) Normalize() {
	r.GroupName = strings.TrimSpace(r.GroupName)
}

type UpdateGroupRequest struct {
	GroupName        *string `json:"group_name,omitempty" validate:"omitempty,min=2,max=255"`
	GroupDescription *string `json:"group_description,omitempty" validate:"omitempty,max=2000"`
}

func (r *UpdateGroupRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.GroupName != nil {
		up["group_name"] = strings.TrimSpace(*r.GroupName)
	}
	if r.GroupDescription != nil {
		up["group_description"] = r.GroupDescription
	}
	return up
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type GroupResponse struct {
	GroupID          int       `json:"group_id"`
	GroupName        string    `json:"group_name"`
	GroupDescription *string   `json:"group_description,omitempty"`
	GroupCreatedAt   time.Time `json:"group_created_at"`
}

func ToGroupResponse(m model.GroupModel) GroupResponse {
	return GroupResponse{
		GroupID:          m.GroupID,
		GroupName:        m.GroupName,
		GroupDescription: m.GroupDescription,
		GroupCreatedAt:   m.GroupCreatedAt,
	}
}
