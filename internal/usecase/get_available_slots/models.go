package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// Request модель запроса на получение окна свободных слотов
type Request struct {
	DoctorID string // ID врача во внешнем API
	Days     int    // Сколько непустых дат вернуть (0 - из настроек врача)
}

// Response модель ответа с окном свободных слотов
type Response struct {
	DoctorID    string
	DoctorName  string
	GeneratedAt time.Time // Момент, от которого считалось окно
	Window      domain.SlotWindow
}
