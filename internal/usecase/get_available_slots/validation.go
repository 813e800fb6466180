package get_available_slots

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.DoctorID) == "" {
		return fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	if req.Days < 0 || req.Days > domain.MaxWindowDays {
		return fmt.Errorf("%w: days must be between 0 and %d", ErrInvalidInput, domain.MaxWindowDays)
	}

	return nil
}

// targetDays выбирает целевое число дат: явный запрос важнее настроек врача,
// но не больше горизонта просмотра
func targetDays(req *Request, schedule *domain.DoctorSchedule) int {
	days := schedule.WindowDays
	if req.Days > 0 {
		days = req.Days
	}
	if days > schedule.MaxHorizonDays {
		days = schedule.MaxHorizonDays
	}
	return days
}
