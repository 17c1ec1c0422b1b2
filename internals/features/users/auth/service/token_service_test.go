// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/configs"
	userModel "kampusku_backend/internals/features/users/user/model"
)

func intPtr(v int) *int { return &v }

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "rahasia123"))
	assert.Error(t, CheckPasswordHash(hash, "salah"))
}

func TestIssueAccessTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"
	now := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)

	user := userModel.UserModel{
		UserID:        7,
		UserEmail:     "guru@kampusku.local",
		UserRole:      "teacher",
		UserTeacherID: intPtr(3),
	}

	signed, err := IssueAccessToken(user, now)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithoutClaimsValidation())
	require.NoError(t, err)

	assert.Equal(t, "access", claims["typ"])
	assert.Equal(t, float64(7), claims["id"])
	assert.Equal(t, "guru@kampusku.local", claims["email"])
	assert.Equal(t, "teacher", claims["role"])
	assert.Equal(t, float64(3), claims["teacher_id"])
	// user tanpa group: klaim group_id tidak ada sama sekali
	_, hasGroup := claims["group_id"]
	assert.False(t, hasGroup)

	// masa berlaku 24 jam dari waktu terbit
	assert.Equal(t, float64(now.Unix()), claims["iat"])
	assert.Equal(t, float64(now.Add(24*time.Hour).Unix()), claims["exp"])
}

func TestIssueAccessTokenStudentClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"

	user := userModel.UserModel{
		UserID:      11,
		UserEmail:   "siswa@kampusku.local",
		UserRole:    "student",
		UserGroupID: intPtr(2),
	}

	signed, err := IssueAccessToken(user, time.Now())
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)

	assert.Equal(t, "student", claims["role"])
	assert.Equal(t, float64(2), claims["group_id"])
	_, hasTeacher := claims["teacher_id"]
	assert.False(t, hasTeacher)
}

func TestIssueAccessTokenMissingSecret(t *testing.T) {
	configs.JWTSecret = ""
	_, err := IssueAccessToken(userModel.UserModel{UserID: 1}, time.Now())
	assert.Error(t, err)
}
