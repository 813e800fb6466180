package get_doctor_schedule

import (
	"context"

	"github.com/m04kA/SMC-DoctorBooking/internal/service/schedule/models"
)

type ScheduleService interface {
	Get(ctx context.Context, doctorID string) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
