// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"kampusku_backend/internals/configs"
	userModel "kampusku_backend/internals/features/users/user/model"
)

/* ==========================
   Password
========================== */

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), 10)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

/* ==========================
   Access Token (HS256, 24 jam)
========================== */

// IssueAccessToken menerbitkan JWT berisi identitas + link
// group/teacher (null bila user tidak punya).
func IssueAccessToken(user userModel.UserModel, now time.Time) (string, error) {
	if configs.JWTSecret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	claims := jwt.MapClaims{
		"typ":   "access",
		"id":    user.UserID,
		"email": user.UserEmail,
		"role":  user.UserRole,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTL).Unix(),
	}
	if user.UserGroupID != nil {
		claims["group_id"] = *user.UserGroupID
	}
	if user.UserTeacherID != nil {
		claims["teacher_id"] = *user.UserTeacherID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}
	return signed, nil
}
