package book_appointment

import "errors"

var (
	// ErrUnauthorized возвращается, когда пользователь не вошел в систему
	ErrUnauthorized = errors.New("book_appointment: login to book appointment")

	// ErrSlotInPast возвращается при попытке записаться на прошедшее время
	ErrSlotInPast = errors.New("book_appointment: slot is in the past")

	// ErrRejected возвращается, когда внешний API отказал в записи
	ErrRejected = errors.New("book_appointment: booking rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_appointment: internal error")
)

// RejectedError отказ внешнего API с сообщением для пользователя
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return ErrRejected.Error() + ": " + e.Message
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}
