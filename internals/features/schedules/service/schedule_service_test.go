// file: internals/features/schedules/service/schedule_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kampusku_backend/internals/features/schedules/dto"
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

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func scheduleRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"schedule_id", "schedule_group_id", "schedule_subject_id",
		"schedule_teacher_id", "schedule_room_id",
		"schedule_date", "schedule_time_start", "schedule_time_end",
		"subject_name", "teacher_name", "room_name", "group_name",
	})
}

// Urutan hasil kronologis: ORDER BY date lalu time_start, keduanya ASC.
func TestSearchOrdersByDateThenStartTime(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScheduleService(db)

	mock.ExpectQuery(`(?s)FROM schedule_entries AS s.*ORDER BY s\.schedule_date ASC, s\.schedule_time_start ASC`).
		WillReturnRows(scheduleRows())

	_, err := svc.Search(context.Background(), dto.ScheduleFilter{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Filter terisi masuk sebagai WHERE AND ber-parameter, argumen urut
// sesuai klausanya, dan ORDER BY tetap di belakang.
func TestSearchAppliesFiltersAsParameterizedAnd(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScheduleService(db)

	mock.ExpectQuery(`(?s)FROM schedule_entries AS s.*WHERE s\.schedule_group_id = \$1 AND s\.schedule_date = \$2 ORDER BY s\.schedule_date ASC, s\.schedule_time_start ASC`).
		WithArgs(1, "2024-01-15").
		WillReturnRows(scheduleRows().
			AddRow(1, 1, 1, 1, 1, "2024-01-15", "08:00", "09:40",
				"Algoritma dan Pemrograman", "Budi Santoso", "R-101", "TI-1A"))

	rows, err := svc.Search(context.Background(), dto.ScheduleFilter{
		GroupID: intPtr(1),
		Date:    strPtr("2024-01-15"),
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "2024-01-15", rows[0].ScheduleDate)
	assert.Equal(t, "TI-1A", rows[0].GroupName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Tanpa filter tidak ada WHERE sama sekali: ORDER BY langsung
// menempel setelah join terakhir.
func TestSearchEmptyFilterHasNoWhere(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScheduleService(db)

	mock.ExpectQuery(`(?s)JOIN student_groups ON student_groups\.group_id = s\.schedule_group_id ORDER BY s\.schedule_date ASC`).
		WillReturnRows(scheduleRows())

	_, err := svc.Search(context.Background(), dto.ScheduleFilter{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
