// file: internals/features/schedules/dto/schedule_dto_test.go
package dto

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestScheduleFilterConditionsEmpty(t *testing.T) {
	conds, args := ScheduleFilter{}.Conditions()
	assert.Empty(t, conds)
	assert.Empty(t, args)
}

func TestScheduleFilterConditionsSingle(t *testing.T) {
	conds, args := ScheduleFilter{GroupID: intPtr(7)}.Conditions()
	require.Len(t, conds, 1)
	require.Len(t, args, 1)
	assert.Equal(t, "s.schedule_group_id = ?", conds[0])
	assert.Equal(t, 7, args[0])
}

func TestScheduleFilterConditionsAll(t *testing.T) {
	f := ScheduleFilter{
		GroupID:   intPtr(1),
		TeacherID: intPtr(2),
		RoomID:    intPtr(3),
		SubjectID: intPtr(4),
		Date:      strPtr("2025-09-01"),
	}
	conds, args := f.Conditions()
	require.Len(t, conds, 5)
	require.Len(t, args, 5)

	assert.Equal(t, []string{
		"s.schedule_group_id = ?",
		"s.schedule_teacher_id = ?",
		"s.schedule_room_id = ?",
		"s.schedule_subject_id = ?",
		"s.schedule_date = ?",
	}, conds)
	assert.Equal(t, []interface{}{1, 2, 3, 4, "2025-09-01"}, args)
}

// Kombinasi parsial: klausa dan argumen harus tetap berpasangan.
func TestScheduleFilterConditionsSubset(t *testing.T) {
	f := ScheduleFilter{
		TeacherID: intPtr(9),
		Date:      strPtr("2025-12-31"),
	}
	conds, args := f.Conditions()
	require.Len(t, conds, 2)
	assert.Equal(t, "s.schedule_teacher_id = ?", conds[0])
	assert.Equal(t, 9, args[0])
	assert.Equal(t, "s.schedule_date = ?", conds[1])
	assert.Equal(t, "2025-12-31", args[1])
}

func TestScheduleFilterValidateDate(t *testing.T) {
	assert.NoError(t, ScheduleFilter{}.Validate())
	assert.NoError(t, ScheduleFilter{Date: strPtr("2025-01-31")}.Validate())

	for _, bad := range []string{"31-01-2025", "2025/01/31", "2025-13-01", "besok", ""} {
		err := ScheduleFilter{Date: strPtr(bad)}.Validate()
		require.Error(t, err, "date %q", bad)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	}
}

func TestUpdateScheduleRequestBuildUpdateMap(t *testing.T) {
	empty := (&UpdateScheduleRequest{}).BuildUpdateMap()
	assert.Empty(t, empty)

	req := UpdateScheduleRequest{
		ScheduleRoomID:    intPtr(4),
		ScheduleTimeStart: strPtr("08:00"),
	}
	up := req.BuildUpdateMap()
	assert.Equal(t, map[string]interface{}{
		"schedule_room_id":    4,
		"schedule_time_start": "08:00",
	}, up)
}
