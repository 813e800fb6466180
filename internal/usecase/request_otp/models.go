package request_otp

// Request модель запроса на отправку кода
type Request struct {
	Phone string
}

// Response модель ответа
type Response struct {
	Success            bool
	Message            string
	ResendAfterSeconds int // Через сколько секунд можно запросить код повторно
}
