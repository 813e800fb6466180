package schedule

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

var scheduleColumns = []string{
	"doctor_id", "open_time", "close_time", "slot_step_minutes",
	"window_days", "max_horizon_days", "created_at", "updated_at",
}

func TestRepository_GetByDoctorID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT doctor_id, open_time, close_time")).
		WithArgs("doc-1").
		WillReturnRows(sqlmock.NewRows(scheduleColumns).
			AddRow("doc-1", "09:00:00", "18:00:00", 20, 5, 30, created, created))

	repo := NewRepository(db)
	schedule, err := repo.GetByDoctorID(context.Background(), "doc-1")
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("09:00"), schedule.OpenTime)
	assert.Equal(t, types.TimeString("18:00"), schedule.CloseTime)
	assert.Equal(t, 20, schedule.SlotStepMinutes)
	assert.Equal(t, 5, schedule.WindowDays)
	assert.Equal(t, 30, schedule.MaxHorizonDays)
	assert.True(t, schedule.IsPersisted())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByDoctorID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM doctor_schedules").
		WithArgs("doc-404").
		WillReturnError(sql.ErrNoRows)

	_, err = NewRepository(db).GetByDoctorID(context.Background(), "doc-404")
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestRepository_GetByDoctorID_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM doctor_schedules").
		WillReturnError(errors.New("connection reset"))

	_, err = NewRepository(db).GetByDoctorID(context.Background(), "doc-1")
	assert.ErrorIs(t, err, ErrScanRow)
}

func TestRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO doctor_schedules")).
		WithArgs("doc-1", "09:00", "18:00", 20, 5, 30).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, updated))

	input := &domain.DoctorSchedule{
		DoctorID:        "doc-1",
		OpenTime:        "09:00",
		CloseTime:       "18:00",
		SlotStepMinutes: 20,
		WindowDays:      5,
		MaxHorizonDays:  30,
	}

	saved, err := NewRepository(db).Upsert(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, created, saved.CreatedAt)
	assert.Equal(t, updated, saved.UpdatedAt)
	assert.True(t, input.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Upsert_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO doctor_schedules").
		WillReturnError(errors.New("check constraint violated"))

	_, err = NewRepository(db).Upsert(context.Background(), domain.DefaultDoctorSchedule("doc-1"))
	assert.ErrorIs(t, err, ErrExecQuery)
}
