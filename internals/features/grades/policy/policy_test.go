// file: internals/features/grades/policy/policy_test.go
package policy

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kampusku_backend/internals/constants"
	authHelper "kampusku_backend/internals/helpers/auth"
)

func intPtr(v int) *int { return &v }

func admin() authHelper.Identity {
	return authHelper.Identity{UserID: 1, Role: constants.RoleAdmin}
}

func teacher(teacherID int) authHelper.Identity {
	return authHelper.Identity{UserID: 2, Role: constants.RoleTeacher, TeacherID: intPtr(teacherID)}
}

func student(userID int) authHelper.Identity {
	return authHelper.Identity{UserID: userID, Role: constants.RoleStudent, GroupID: intPtr(1)}
}

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)
}

func TestCanViewStudentGrades(t *testing.T) {
	// admin & teacher bebas, teacher tanpa cek subject
	assert.NoError(t, CanViewStudentGrades(admin(), 42))
	assert.NoError(t, CanViewStudentGrades(teacher(5), 42))

	// student hanya dirinya sendiri
	assert.NoError(t, CanViewStudentGrades(student(42), 42))
	assertForbidden(t, CanViewStudentGrades(student(42), 43))
}

func TestCanViewTeacherGrades(t *testing.T) {
	assert.NoError(t, CanViewTeacherGrades(admin(), 5))

	assert.NoError(t, CanViewTeacherGrades(teacher(5), 5))
	assertForbidden(t, CanViewTeacherGrades(teacher(5), 6))

	// teacher tanpa link teacher_id di token → ditolak
	noLink := authHelper.Identity{UserID: 2, Role: constants.RoleTeacher}
	assertForbidden(t, CanViewTeacherGrades(noLink, 5))

	// student selalu ditolak, termasuk untuk gurunya sendiri
	assertForbidden(t, CanViewTeacherGrades(student(42), 5))
}

func TestCanViewAllGrades(t *testing.T) {
	assert.NoError(t, CanViewAllGrades(admin()))
	assertForbidden(t, CanViewAllGrades(teacher(5)))
	assertForbidden(t, CanViewAllGrades(student(42)))
}

func TestCanCreateGrade(t *testing.T) {
	assert.NoError(t, CanCreateGrade(admin(), 5))

	// teacher hanya atas namanya sendiri
	assert.NoError(t, CanCreateGrade(teacher(5), 5))
	assertForbidden(t, CanCreateGrade(teacher(5), 6))

	noLink := authHelper.Identity{UserID: 2, Role: constants.RoleTeacher}
	assertForbidden(t, CanCreateGrade(noLink, 5))

	assertForbidden(t, CanCreateGrade(student(42), 5))
}

func TestCanMutateGrade(t *testing.T) {
	// admin boleh mengubah baris siapa pun
	assert.NoError(t, CanMutateGrade(admin(), 5))

	// teacher hanya baris dengan teacher_id dirinya
	assert.NoError(t, CanMutateGrade(teacher(5), 5))
	assertForbidden(t, CanMutateGrade(teacher(5), 6))

	assertForbidden(t, CanMutateGrade(student(42), 5))
}

func TestUnknownRoleDenied(t *testing.T) {
	ghost := authHelper.Identity{UserID: 9, Role: "superuser"}
	assertForbidden(t, CanViewTeacherGrades(ghost, 1))
	assertForbidden(t, CanViewAllGrades(ghost))
	assertForbidden(t, CanCreateGrade(ghost, 1))
	assertForbidden(t, CanMutateGrade(ghost, 1))
}
