// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
	authDTO "kampusku_backend/internals/features/users/auth/dto"
	userDTO "kampusku_backend/internals/features/users/user/dto"
	userModel "kampusku_backend/internals/features/users/user/model"
	helper "kampusku_backend/internals/helpers"
)

const accessTTL = 24 * time.Hour

var validate = validator.New()

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	input.Normalize()
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_email = ?", input.UserEmail).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sama untuk email & password salah
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	if err := CheckPasswordHash(user.UserPassword, input.UserPassword); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return respondWithToken(c, user)
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	input.Normalize()
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := HashPassword(input.UserPassword)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	// Link group/teacher tidak divalidasi terhadap role di sini;
	// FK tetap menjaga referensi valid.
	user := userModel.UserModel{
		UserName:      input.UserName,
		UserEmail:     input.UserEmail,
		UserPassword:  hash,
		UserRole:      input.UserRole,
		UserGroupID:   input.UserGroupID,
		UserTeacherID: input.UserTeacherID,
	}
	if err := db.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "User dengan email tersebut sudah ada")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.Error(c, fiber.StatusBadRequest, "Referensi group/teacher tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User berhasil dibuat", userDTO.ToUserResponse(user))
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.GoogleLoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	if email == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Google token tanpa email")
	}

	// Hanya akun yang sudah terdaftar admin yang bisa masuk via
	// Google — tidak ada auto-provision (role tidak bisa ditebak).
	var user userModel.UserModel
	if err := db.First(&user, "user_email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Akun belum terdaftar. Hubungi admin.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return respondWithToken(c, user)
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(int)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized - identitas tidak ditemukan")
	}

	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}
	return helper.Success(c, "OK", userDTO.ToUserResponse(user))
}

/* ==========================
   Token helpers
========================== */

func respondWithToken(c *fiber.Ctx, user userModel.UserModel) error {
	token, err := IssueAccessToken(user, time.Now())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.Success(c, "Login berhasil", authDTO.LoginResponse{
		Token: token,
		User:  userDTO.ToUserResponse(user),
	})
}
