package models

import (
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// AttemptResponse запись журнала попыток бронирования
type AttemptResponse struct {
	ID        string    `json:"id"`
	DoctorID  string    `json:"doctorId"`
	SlotDate  string    `json:"slotDate"`
	SlotTime  string    `json:"slotTime"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// AttemptListResponse список попыток
type AttemptListResponse struct {
	Attempts []*AttemptResponse `json:"attempts"`
	Total    int                `json:"total"`
}

// FromDomainAttemptList конвертирует список доменных моделей в ответ
func FromDomainAttemptList(attempts []*domain.BookingAttempt) *AttemptListResponse {
	resp := &AttemptListResponse{
		Attempts: make([]*AttemptResponse, 0, len(attempts)),
		Total:    len(attempts),
	}
	for _, a := range attempts {
		resp.Attempts = append(resp.Attempts, &AttemptResponse{
			ID:        a.ID,
			DoctorID:  a.DoctorID,
			SlotDate:  a.SlotDate,
			SlotTime:  a.SlotTime,
			Success:   a.Success,
			Message:   a.Message,
			CreatedAt: a.CreatedAt,
		})
	}
	return resp
}
