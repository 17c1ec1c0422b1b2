// file: internals/features/schedules/controller/schedule_controller_test.go
package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Query jelek harus ditolak 400 sebelum menyentuh DB,
// jadi controller dengan DB nil aman dipakai di sini.
func newSearchApp() *fiber.App {
	ctl := NewScheduleController(nil, validator.New())
	app := fiber.New()
	app.Get("/schedule", ctl.Search)
	return app
}

func TestSearchRejectsNonNumericFilter(t *testing.T) {
	app := newSearchApp()
	for _, target := range []string{
		"/schedule?groupId=abc",
		"/schedule?teacherId=1.5x",
		"/schedule?subjectId=null",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "target %s", target)
	}
}

func TestSearchRejectsBadDate(t *testing.T) {
	app := newSearchApp()
	for _, target := range []string{
		"/schedule?date=01-09-2025",
		"/schedule?date=2025-9-1",
		"/schedule?date=kemarin",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "target %s", target)
	}
}
