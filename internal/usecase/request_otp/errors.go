package request_otp

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrCooldown возвращается, если код запрошен раньше окончания паузы
	ErrCooldown = errors.New("request_otp: resend cooldown is active")

	// ErrRejected возвращается, когда внешний API отказал в отправке кода
	ErrRejected = errors.New("request_otp: otp request rejected")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("request_otp: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("request_otp: internal error")
)

// CooldownError пауза еще активна
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: retry in %ds", ErrCooldown.Error(), e.Seconds())
}

func (e *CooldownError) Unwrap() error {
	return ErrCooldown
}

// Seconds оставшаяся пауза в секундах с округлением вверх
func (e *CooldownError) Seconds() int {
	return int(math.Ceil(e.Remaining.Seconds()))
}

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
