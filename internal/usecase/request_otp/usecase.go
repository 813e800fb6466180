package request_otp

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
)

// UseCase use case для отправки одноразового кода на телефон
type UseCase struct {
	clinic    ClinicClient
	cooldowns CooldownStore
	cooldown  time.Duration
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
// cooldown <= 0 заменяется на domain.OTPResendSeconds
func NewUseCase(clinic ClinicClient, cooldowns CooldownStore, cooldown time.Duration, logger Logger) *UseCase {
	if cooldown <= 0 {
		cooldown = domain.OTPResendSeconds * time.Second
	}
	return &UseCase{
		clinic:    clinic,
		cooldowns: cooldowns,
		cooldown:  cooldown,
		logger:    logger,
	}
}

// Execute выполняет use case отправки кода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация телефона
	phone, err := domain.NormalizePhone(req.Phone)
	if err != nil {
		uc.logger.Warn("RequestOTP: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("RequestOTP: phone=%s", maskPhone(phone))

	// 2. Проверяем паузу между отправками
	// Недоступность Redis не блокирует вход
	remaining, err := uc.cooldowns.Remaining(ctx, phone)
	if err != nil {
		uc.logger.Warn("RequestOTP: cooldown check failed, continuing: %v", err)
	} else if remaining > 0 {
		cooldownErr := &CooldownError{Remaining: remaining}
		uc.logger.Warn("RequestOTP: phone=%s requested again in cooldown, %ds left", maskPhone(phone), cooldownErr.Seconds())
		return nil, cooldownErr
	}

	// 3. Запрашиваем отправку кода
	result, err := uc.clinic.GenerateOTP(ctx, phone)
	if err != nil {
		uc.logger.Error("RequestOTP: clinic API call failed: %v", err)
		return nil, fmt.Errorf("%w: failed to generate otp: %v", ErrInternal, err)
	}
	if !result.Success {
		uc.logger.Warn("RequestOTP: rejected by clinic API: %s", result.Message)
		return nil, &RejectedError{Message: result.Message}
	}

	// 4. Запускаем паузу
	if err := uc.cooldowns.Start(ctx, phone, uc.cooldown); err != nil {
		uc.logger.Warn("RequestOTP: failed to start cooldown: %v", err)
	}

	return &Response{
		Success:            true,
		Message:            result.Message,
		ResendAfterSeconds: int(uc.cooldown / time.Second),
	}, nil
}

// maskPhone оставляет в логах только последние 4 цифры
func maskPhone(phone string) string {
	const visible = 4
	if len(phone) <= visible {
		return phone
	}
	masked := make([]byte, len(phone))
	for i := range phone {
		if i < len(phone)-visible {
			masked[i] = '*'
		} else {
			masked[i] = phone[i]
		}
	}
	return string(masked)
}
