package book_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.DoctorID) == "" {
		return fmt.Errorf("%w: docId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SlotDate) == "" {
		return fmt.Errorf("%w: slotDate is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SlotTime) == "" {
		return fmt.Errorf("%w: slotTime is required", ErrInvalidInput)
	}
	return nil
}

// slotStart разбирает дату и время слота в часовом поясе now
func slotStart(req *Request, labelLayout string, now time.Time) (time.Time, error) {
	date, err := domain.ParseDateKey(req.SlotDate, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	minutes, err := domain.ParseTimeLabel(req.SlotTime, labelLayout)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return time.Date(date.Year(), date.Month(), date.Day(), 0, minutes, 0, 0, now.Location()), nil
}

// validateNotInPast проверяет, что слот начинается позже now
func validateNotInPast(start, now time.Time) error {
	if !start.After(now) {
		return fmt.Errorf("%w: %s", ErrSlotInPast, start.Format(domain.DateFormat+" "+domain.TimeFormat))
	}
	return nil
}
