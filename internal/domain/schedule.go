package domain

import (
	"time"

	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

// DoctorSchedule настройки окна записи для конкретного врача
// Если записи нет, используются значения по умолчанию (10:00-21:00, шаг 30 минут, 7 дней)
type DoctorSchedule struct {
	DoctorID        string
	OpenTime        types.TimeString
	CloseTime       types.TimeString
	SlotStepMinutes int
	WindowDays      int // Сколько непустых дат показывать
	MaxHorizonDays  int // Сколько дней максимум просматривать
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultDoctorSchedule возвращает настройки по умолчанию для врача
func DefaultDoctorSchedule(doctorID string) *DoctorSchedule {
	return &DoctorSchedule{
		DoctorID:        doctorID,
		OpenTime:        "10:00",
		CloseTime:       "21:00",
		SlotStepMinutes: DefaultSlotStepMinutes,
		WindowDays:      DefaultWindowDays,
		MaxHorizonDays:  DefaultMaxHorizonDays,
	}
}

// BusinessHours переводит настройки в минуты от начала суток
func (s *DoctorSchedule) BusinessHours() (BusinessHours, error) {
	open, err := s.OpenTime.Minutes()
	if err != nil {
		return BusinessHours{}, err
	}
	closing, err := s.CloseTime.Minutes()
	if err != nil {
		return BusinessHours{}, err
	}
	return BusinessHours{
		OpenMinutes:  open,
		CloseMinutes: closing,
		StepMinutes:  s.SlotStepMinutes,
	}, nil
}

// IsPersisted returns true if the schedule was loaded from storage
func (s *DoctorSchedule) IsPersisted() bool {
	return !s.CreatedAt.IsZero()
}
