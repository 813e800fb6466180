package domain

import "errors"

// Часы приема по умолчанию
const (
	DefaultOpenMinutes     = 10 * 60 // 10:00
	DefaultCloseMinutes    = 21 * 60 // 21:00
	DefaultSlotStepMinutes = 30
	DefaultWindowDays      = 7
	DefaultMaxHorizonDays  = 60
)

// Ограничения для настроек расписания
const (
	MinSlotStepMinutes = 5
	MaxSlotStepMinutes = 240
	MinWindowDays      = 1
	MaxWindowDays      = 60
	MaxHorizonDays     = 365
)

// Форматы
const (
	TimeFormat       = "15:04"      // HH:MM
	DateFormat       = "2006-01-02" // YYYY-MM-DD
	TimeLabelLayout  = "03:04 PM"   // Метка слота во внешнем API
	OTPLength        = 6
	OTPResendSeconds = 30
)

var (
	// ErrInvalidDateKey возвращается при некорректном ключе даты D_M_YYYY
	ErrInvalidDateKey = errors.New("domain: invalid date key")

	// ErrInvalidTimeLabel возвращается при некорректной метке времени слота
	ErrInvalidTimeLabel = errors.New("domain: invalid time label")
)
