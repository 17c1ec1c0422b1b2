// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	groupModel "kampusku_backend/internals/features/academics/groups/model"
	teacherModel "kampusku_backend/internals/features/academics/teachers/model"
)

/* =======================================================
   UserModel — map ke tabel users
   Role: admin | teacher | student (lihat constants.AllRoles).
   user_group_id diisi untuk student, user_teacher_id untuk
   teacher; keduanya opsional dan tidak divalidasi saat tulis.
   ======================================================= */

type UserModel struct {
	UserID        int       `json:"user_id" gorm:"primaryKey;autoIncrement;column:user_id"`
	UserName      string    `json:"user_name" gorm:"type:varchar(255);not null;column:user_name"`
	UserEmail     string    `json:"user_email" gorm:"type:varchar(255);not null;uniqueIndex;column:user_email"`
	UserPassword  string    `json:"-" gorm:"type:varchar(255);not null;column:user_password"`
	UserRole      string    `json:"user_role" gorm:"type:varchar(20);not null;column:user_role"`
	UserGroupID   *int      `json:"user_group_id,omitempty" gorm:"column:user_group_id"`
	UserTeacherID *int      `json:"user_teacher_id,omitempty" gorm:"column:user_teacher_id"`
	UserCreatedAt time.Time `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt time.Time `json:"user_updated_at" gorm:"column:user_updated_at;not null;autoUpdateTime"`

	// FK: hapus group/teacher → link di user dikosongkan
	Group   *groupModel.GroupModel     `json:"-" gorm:"foreignKey:UserGroupID;references:GroupID;constraint:OnDelete:SET NULL"`
	Teacher *teacherModel.TeacherModel `json:"-" gorm:"foreignKey:UserTeacherID;references:TeacherID;constraint:OnDelete:SET NULL"`
}

func (UserModel) TableName() string {
	return "users"
}
