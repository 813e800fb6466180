package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/psqlbuilder"
)

const tableName = "doctor_schedules"

// Repository репозиторий настроек окна записи врачей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDoctorID получает настройки врача
func (r *Repository) GetByDoctorID(ctx context.Context, doctorID string) (*domain.DoctorSchedule, error) {
	query, args, err := psqlbuilder.Select(
		"doctor_id",
		"open_time",
		"close_time",
		"slot_step_minutes",
		"window_days",
		"max_horizon_days",
		"created_at",
		"updated_at",
	).
		From(tableName).
		Where(squirrel.Eq{"doctor_id": doctorID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.DoctorSchedule
	var createdAt, updatedAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&schedule.DoctorID,
		&schedule.OpenTime,
		&schedule.CloseTime,
		&schedule.SlotStepMinutes,
		&schedule.WindowDays,
		&schedule.MaxHorizonDays,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDoctorID - scan schedule: %v", ErrScanRow, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

// Upsert создает или полностью заменяет настройки врача
func (r *Repository) Upsert(ctx context.Context, schedule *domain.DoctorSchedule) (*domain.DoctorSchedule, error) {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"doctor_id",
			"open_time",
			"close_time",
			"slot_step_minutes",
			"window_days",
			"max_horizon_days",
		).
		Values(
			schedule.DoctorID,
			schedule.OpenTime,
			schedule.CloseTime,
			schedule.SlotStepMinutes,
			schedule.WindowDays,
			schedule.MaxHorizonDays,
		).
		Suffix(`ON CONFLICT (doctor_id) DO UPDATE SET
			open_time = EXCLUDED.open_time,
			close_time = EXCLUDED.close_time,
			slot_step_minutes = EXCLUDED.slot_step_minutes,
			window_days = EXCLUDED.window_days,
			max_horizon_days = EXCLUDED.max_horizon_days,
			updated_at = NOW()
			RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	saved := *schedule
	saved.CreatedAt = createdAt.Time
	saved.UpdatedAt = updatedAt.Time

	return &saved, nil
}
