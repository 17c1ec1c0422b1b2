// file: internals/features/academics/rooms/model/room_model.go
package model

import "time"

/* =======================================================
   RoomModel — map ke tabel rooms
   ======================================================= */

type RoomModel struct {
	RoomID          int       `json:"room_id" gorm:"primaryKey;autoIncrement;column:room_id"`
	RoomName        string    `json:"room_name" gorm:"type:varchar(255);not null;uniqueIndex;column:room_name"`
	RoomCapacity    int       `json:"room_capacity" gorm:"not null;column:room_capacity"`
	RoomDescription *string   `json:"room_description,omitempty" gorm:"type:text;column:room_description"`
	RoomCreatedAt   time.Time `json:"room_created_at" gorm:"column:room_created_at;not null;autoCreateTime"`
}

func (RoomModel) TableName() string {
	return "rooms"
}
