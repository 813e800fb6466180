package attempts

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/psqlbuilder"
)

const tableName = "booking_attempts"

// Repository журнал попыток бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет попытку бронирования
// ID генерируется, если не задан
func (r *Repository) Create(ctx context.Context, attempt *domain.BookingAttempt) (*domain.BookingAttempt, error) {
	saved := *attempt
	if saved.ID == "" {
		saved.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "doctor_id", "slot_date", "slot_time", "success", "message").
		Values(saved.ID, saved.DoctorID, saved.SlotDate, saved.SlotTime, saved.Success, saved.Message).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&saved.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &saved, nil
}

// ListByDoctor возвращает последние попытки по врачу, новые первыми
func (r *Repository) ListByDoctor(ctx context.Context, doctorID string, limit int) ([]*domain.BookingAttempt, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"doctor_id",
		"slot_date",
		"slot_time",
		"success",
		"message",
		"created_at",
	).
		From(tableName).
		Where(squirrel.Eq{"doctor_id": doctorID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDoctor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDoctor - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingAttempt, 0)
	for rows.Next() {
		var attempt domain.BookingAttempt
		if err := rows.Scan(
			&attempt.ID,
			&attempt.DoctorID,
			&attempt.SlotDate,
			&attempt.SlotTime,
			&attempt.Success,
			&attempt.Message,
			&attempt.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByDoctor - scan attempt: %v", ErrScanRow, err)
		}
		result = append(result, &attempt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDoctor - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}
