package verify_otp

// Request модель запроса на проверку кода
type Request struct {
	Phone string
	OTP   string
}

// Response модель ответа
// Token заполняется только для существующих пользователей, новым нужна регистрация
type Response struct {
	Existing          bool
	Token             string
	Message           string
	NeedsRegistration bool
}
