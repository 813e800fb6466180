package book_appointment

import bookAppointment "github.com/m04kA/SMC-DoctorBooking/internal/usecase/book_appointment"

// BookAppointmentRequest HTTP request model (поля как во внешнем API)
type BookAppointmentRequest struct {
	DocID    string `json:"docId"`
	SlotDate string `json:"slotDate"` // "2_1_2024"
	SlotTime string `json:"slotTime"` // "10:30 AM"
}

// BookAppointmentResponse HTTP response model
type BookAppointmentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest(token string) *bookAppointment.Request {
	return &bookAppointment.Request{
		Token:    token,
		DoctorID: r.DocID,
		SlotDate: r.SlotDate,
		SlotTime: r.SlotTime,
	}
}
