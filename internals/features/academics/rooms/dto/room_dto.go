// file: internals/features/academics/rooms/dto/room_dto.go
package dto

import (
	"strings"
	"time"

	"kampusku_backend/internals/features/academics/rooms/model"
)

type CreateRoomRequest struct {
	RoomName        string  `json:"room_name" validate:"required,min=1,max=255"`
	RoomCapacity    int     `json:"room_capacity" validate:"required,min=1"`
	RoomDescription *string `json:"room_description,omitempty" validate:"omitempty,max=2000"`
}

func (r *CreateRoomRequest) Normalize() {
	r.RoomName = strings.TrimSpace(r.RoomName)
}

type UpdateRoomRequest struct {
	RoomName        *string `json:"room_name,omitempty" validate:"omitempty,min=1,max=255"`
	RoomCapacity    *int    `json:"room_capacity,omitempty" validate:"omitempty,min=1"`
	RoomDescription *string `json:"room_description,omitempty" validate:"omitempty,max=2000"`
}

func (r *UpdateRoomRequest) BuildUpdateMap() map[string]interface{} {
	up := make(map[string]interface{})
	if r.RoomName != nil {
		up["room_name"] = strings.TrimSpace(*r.RoomName)
	}
	if r.RoomCapacity != nil {
		up["room_capacity"] = *r.RoomCapacity
	}
	if r.RoomDescription != nil {
		up["room_description"] = r.RoomDescription
	}
	return up
}

type RoomResponse struct {
	RoomID          int       `json:"room_id"`
	RoomName        string    `json:"room_name"`
	RoomCapacity    int       `json:"room_capacity"`
	RoomDescription *string   `json:"room_description,omitempty"`
	RoomCreatedAt   time.Time `json:"room_created_at"`
}

func ToRoomResponse(m model.RoomModel) RoomResponse {
	return RoomResponse{
		RoomID:          m.RoomID,
		RoomName:        m.RoomName,
		RoomCapacity:    m.RoomCapacity,
		RoomDescription: m.RoomDescription,
		RoomCreatedAt:   m.RoomCreatedAt,
	}
}
