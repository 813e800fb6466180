package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-DoctorBooking/internal/usecase/get_available_slots"
)

// SlotResponse один свободный слот
type SlotResponse struct {
	DateKey  string `json:"dateKey"`  // D_M_YYYY, как в slots_booked внешнего API
	Time     string `json:"time"`     // "10:30 AM"
	StartsAt string `json:"startsAt"` // RFC3339 в часовом поясе клиники
}

// DayResponse дата окна со свободными слотами
type DayResponse struct {
	Date    string         `json:"date"` // YYYY-MM-DD
	DateKey string         `json:"dateKey"`
	Weekday string         `json:"weekday"` // SUN..SAT
	Day     int            `json:"day"`
	Slots   []SlotResponse `json:"slots"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	DoctorID    string        `json:"doctorId"`
	DoctorName  string        `json:"doctorName"`
	GeneratedAt string        `json:"generatedAt"`
	Truncated   bool          `json:"truncated"` // Горизонт исчерпан раньше, чем набралось нужное число дат
	Days        []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]DayResponse, 0, len(resp.Window.Buckets))
	for _, bucket := range resp.Window.Buckets {
		slots := make([]SlotResponse, 0, len(bucket.Candidates))
		for _, c := range bucket.Candidates {
			slots = append(slots, SlotResponse{
				DateKey:  c.DateKey,
				Time:     c.Time,
				StartsAt: c.Date.Format(time.RFC3339),
			})
		}
		days = append(days, DayResponse{
			Date:    bucket.Date.Format(domain.DateFormat),
			DateKey: bucket.DateKey,
			Weekday: bucket.Weekday,
			Day:     bucket.Date.Day(),
			Slots:   slots,
		})
	}

	return &AvailableSlotsResponse{
		DoctorID:    resp.DoctorID,
		DoctorName:  resp.DoctorName,
		GeneratedAt: resp.GeneratedAt.Format(time.RFC3339),
		Truncated:   resp.Window.Truncated,
		Days:        days,
	}
}
