package clinicapi

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врача нет в списке внешнего API
	ErrDoctorNotFound = errors.New("clinicapi client: doctor not found")

	// ErrUnauthorized возвращается, когда внешний API отклонил токен сессии
	ErrUnauthorized = errors.New("clinicapi client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут, сборка запроса)
	ErrInternal = errors.New("clinicapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("clinicapi client: invalid response")
)
