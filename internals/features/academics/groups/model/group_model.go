// file: internals/features/academics/groups/model/group_model.go
package model

import "time"

/* =======================================================
   GroupModel — map ke tabel student_groups
   ("groups" adalah reserved keyword di Postgres)
   ======================================================= */

type GroupModel struct {
	GroupID          int       `json:"group_id" gorm:"primaryKey;autoIncrement;column:group_id"`
	GroupName        string    `json:"group_name" gorm:"type:varchar(255);not null;uniqueIndex;column:group_name"`
	GroupDescription *string   `json:"group_description,omitempty" gorm:"type:text;column:group_description"`
	GroupCreatedAt   time.Time `json:"group_created_at" gorm:"column:group_created_at;not null;autoCreateTime"`
}

func (GroupModel) TableName() string {
	return "student_groups"
}
