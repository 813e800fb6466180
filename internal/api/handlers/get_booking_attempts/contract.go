package get_booking_attempts

import (
	"context"

	"github.com/m04kA/SMC-DoctorBooking/internal/service/attempts/models"
)

type AttemptsService interface {
	List(ctx context.Context, doctorID string, limit int) (*models.AttemptListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
