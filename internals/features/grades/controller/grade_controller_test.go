// file: internals/features/grades/controller/grade_controller_test.go
package controller

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

type testIdentity struct {
	userID    int
	role      string
	teacherID *int
}

func newGradeApp(t *testing.T, db *gorm.DB, ident testIdentity) *fiber.App {
	t.Helper()
	ctl := NewGradeController(db, validator.New())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", ident.userID)
		c.Locals("user_role", ident.role)
		if ident.teacherID != nil {
			c.Locals("teacher_id", *ident.teacherID)
		}
		return c.Next()
	})
	app.Put("/grades/:id", ctl.Update)
	app.Delete("/grades/:id", ctl.Delete)
	return app
}

func teacherIdent(teacherID int) testIdentity {
	return testIdentity{userID: 2, role: constants.RoleTeacher, teacherID: &teacherID}
}

const gradeRowQuery = `SELECT \* FROM "grades" WHERE grade_id = \$1`

func gradeRow(gradeID, teacherID int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"grade_id", "grade_student_id", "grade_subject_id", "grade_teacher_id",
		"grade_score", "grade_type", "grade_date",
	}).AddRow(gradeID, 10, 1, teacherID, 3, "test", "2024-01-15")
}

// Baris yang tidak ada harus 404, bahkan untuk teacher yang jelas
// bukan pemiliknya: fetch dulu, baru cek kepemilikan.
func TestUpdateMissingRowIs404NotForbidden(t *testing.T) {
	db, mock := newMockDB(t)
	app := newGradeApp(t, db, teacherIdent(5))

	mock.ExpectQuery(gradeRowQuery).WillReturnRows(sqlmock.NewRows([]string{"grade_id"}))

	req := httptest.NewRequest("PUT", "/grades/77", strings.NewReader(`{"grade_score":4}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Baris milik teacher lain: 403, dan tidak ada UPDATE yang jalan.
func TestUpdateForeignRowIs403AfterFetch(t *testing.T) {
	db, mock := newMockDB(t)
	app := newGradeApp(t, db, teacherIdent(5))

	mock.ExpectQuery(gradeRowQuery).WillReturnRows(gradeRow(77, 99))

	req := httptest.NewRequest("PUT", "/grades/77", strings.NewReader(`{"grade_score":4}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Pemilik baris boleh update: fetch → policy lolos → UPDATE jalan.
func TestUpdateOwnRowSucceeds(t *testing.T) {
	db, mock := newMockDB(t)
	app := newGradeApp(t, db, teacherIdent(5))

	mock.ExpectQuery(gradeRowQuery).WillReturnRows(gradeRow(77, 5))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "grades" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("PUT", "/grades/77", strings.NewReader(`{"grade_score":4}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingRowIs404NotForbidden(t *testing.T) {
	db, mock := newMockDB(t)
	app := newGradeApp(t, db, teacherIdent(5))

	mock.ExpectQuery(gradeRowQuery).WillReturnRows(sqlmock.NewRows([]string{"grade_id"}))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/grades/77", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteForeignRowIs403AfterFetch(t *testing.T) {
	db, mock := newMockDB(t)
	app := newGradeApp(t, db, teacherIdent(5))

	mock.ExpectQuery(gradeRowQuery).WillReturnRows(gradeRow(77, 99))

	resp, err := app.Test(httptest.NewRequest("DELETE", "/grades/77", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Admin melewati cek kepemilikan: baris teacher mana pun bisa dihapus.
func TestDeleteAsAdminBypassesOwnership(t *testing.T) {
	db, mock := newMockDB(t)
	app := newGradeApp(t, db, testIdentity{userID: 1, role: constants.RoleAdmin})

	mock.ExpectQuery(gradeRowQuery).WillReturnRows(gradeRow(77, 99))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "grades"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/grades/77", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Query nilai mengikuti context request: context yang sudah batal
// membuat query gagal, bukan jalan terus tanpa batas waktu.
func TestByStudentHonorsRequestContext(t *testing.T) {
	db, _ := newMockDB(t)
	ctl := NewGradeController(db, validator.New())

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", 5)
		c.Locals("user_role", constants.RoleStudent)
		c.SetUserContext(canceled)
		return c.Next()
	})
	app.Get("/grades/student/:id", ctl.ByStudent)

	resp, err := app.Test(httptest.NewRequest("GET", "/grades/student/5", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
