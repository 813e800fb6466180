package clinicapi

import (
	"encoding/json"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// envelope общий конверт ответов внешнего API: флаг успеха и сообщение для пользователя
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DoctorDTO модель врача из внешнего API
type DoctorDTO struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Speciality  string          `json:"speciality"`
	Degree      string          `json:"degree"`
	Experience  string          `json:"experience"`
	About       string          `json:"about"`
	Fees        float64         `json:"fees"`
	Image       string          `json:"image"`
	Available   bool            `json:"available"`
	SlotsBooked json.RawMessage `json:"slots_booked"` // Разбирается нестрого, см. domain.ParseBookedSlotMap
}

// ToDomain конвертирует DTO в доменную модель
func (d DoctorDTO) ToDomain() domain.Doctor {
	return domain.Doctor{
		ID:          d.ID,
		Name:        d.Name,
		Speciality:  d.Speciality,
		Degree:      d.Degree,
		Experience:  d.Experience,
		About:       d.About,
		Fees:        d.Fees,
		Image:       d.Image,
		Available:   d.Available,
		SlotsBooked: domain.ParseBookedSlotMap(d.SlotsBooked),
	}
}

type doctorListResponse struct {
	envelope
	Doctors []DoctorDTO `json:"doctors"`
}

// BookRequest тело запроса на бронирование
type BookRequest struct {
	DocID    string `json:"docId"`
	SlotDate string `json:"slotDate"` // D_M_YYYY
	SlotTime string `json:"slotTime"` // "10:30 AM"
}

type generateOTPRequest struct {
	Phone string `json:"phone"`
}

type phoneLoginRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}

type phoneLoginResponse struct {
	envelope
	Existing bool   `json:"existing"`
	Token    string `json:"token"`
}

// Result результат операции внешнего API
type Result struct {
	Success bool
	Message string
}

// LoginResult результат входа по телефону
type LoginResult struct {
	Success  bool
	Existing bool   // Пользователь уже зарегистрирован
	Token    string // Токен сессии (только для существующих пользователей)
	Message  string
}
