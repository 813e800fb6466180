package domain

import "time"

// BookingAttempt запись журнала отправленных во внешний API бронирований
// Журнал служит для диагностики и не является источником истины о записях
type BookingAttempt struct {
	ID        string
	DoctorID  string
	SlotDate  string // D_M_YYYY
	SlotTime  string // "10:30 AM"
	Success   bool
	Message   string
	CreatedAt time.Time
}
