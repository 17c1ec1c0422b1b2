// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	authService "kampusku_backend/internals/features/users/auth/service"
	"kampusku_backend/internals/features/users/user/dto"
	"kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB, v *validator.Validate) *UserController {
	return &UserController{DB: db, Validate: v}
}

/* =======================================================
   READ
   ======================================================= */

// List: GET /api/users (admin)
func (ctl *UserController) List(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := ctl.DB.Order("user_name ASC").Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.ToUserResponse(u))
	}
	return helper.Success(c, "OK", out)
}

// GetByID: GET /api/users/:id (admin)
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var user model.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.Success(c, "OK", dto.ToUserResponse(user))
}

// ListStudents: GET /api/students — daftar student + nama group,
// dipakai teacher/admin saat mengisi nilai.
func (ctl *UserController) ListStudents(c *fiber.Ctx) error {
	rows := make([]dto.StudentItemResponse, 0)
	if err := ctl.DB.Table("users").
		Select(`users.user_id, users.user_name, users.user_email, users.user_group_id,
			student_groups.group_name AS group_name`).
		Joins("LEFT JOIN student_groups ON student_groups.group_id = users.user_group_id").
		Where("users.user_role = ?", constants.RoleStudent).
		Order("users.user_name ASC").
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data student")
	}
	return helper.Success(c, "OK", rows)
}

/* =======================================================
   WRITE (admin)
   ======================================================= */

func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := authService.HashPassword(req.UserPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := model.UserModel{
		UserName:      req.UserName,
		UserEmail:     req.UserEmail,
		UserPassword:  hash,
		UserRole:      req.UserRole,
		UserGroupID:   req.UserGroupID,
		UserTeacherID: req.UserTeacherID,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "User dengan email tersebut sudah ada")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Referensi group/teacher tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User berhasil dibuat", dto.ToUserResponse(user))
}

func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	updates := req.BuildUpdateMap()
	if req.UserPassword != nil {
		hash, err := authService.HashPassword(*req.UserPassword)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
		}
		updates["user_password"] = hash
	}
	if len(updates) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Tidak ada field untuk diupdate")
	}

	if err := ctl.DB.Model(&user).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "User dengan email tersebut sudah ada")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Referensi group/teacher tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengubah user")
	}
	return helper.Success(c, "User diperbarui", dto.ToUserResponse(user))
}

func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctl.DB.Delete(&model.UserModel{}, "user_id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.Success(c, "User dihapus", fiber.Map{"deleted": true})
}
