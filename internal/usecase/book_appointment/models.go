package book_appointment

// Request модель запроса на запись к врачу
type Request struct {
	Token    string // Токен сессии пользователя
	DoctorID string
	SlotDate string // D_M_YYYY
	SlotTime string // "10:30 AM"
}

// Response модель ответа на запись
type Response struct {
	Success bool
	Message string
}
