package verify_otp

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicapi"
)

// UseCase use case для входа по одноразовому коду
type UseCase struct {
	clinic    ClinicClient
	cooldowns CooldownClearer
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(clinic ClinicClient, cooldowns CooldownClearer, logger Logger) *UseCase {
	return &UseCase{
		clinic:    clinic,
		cooldowns: cooldowns,
		logger:    logger,
	}
}

// Execute выполняет use case проверки кода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	phone, err := domain.NormalizePhone(req.Phone)
	if err != nil {
		uc.logger.Warn("VerifyOTP: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := domain.ValidateOTP(req.OTP); err != nil {
		uc.logger.Warn("VerifyOTP: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверяем код во внешнем API
	result, err := uc.clinic.PhoneLogin(ctx, phone, req.OTP)
	if err != nil {
		if errors.Is(err, clinicapi.ErrUnauthorized) {
			return nil, ErrInvalidOTP
		}
		uc.logger.Error("VerifyOTP: clinic API call failed: %v", err)
		return nil, fmt.Errorf("%w: failed to verify otp: %v", ErrInternal, err)
	}
	if !result.Success {
		uc.logger.Warn("VerifyOTP: code rejected: %s", result.Message)
		return nil, ErrInvalidOTP
	}

	// 3. Вход выполнен, пауза больше не нужна
	if uc.cooldowns != nil {
		if err := uc.cooldowns.Clear(ctx, phone); err != nil {
			uc.logger.Warn("VerifyOTP: failed to clear cooldown: %v", err)
		}
	}

	resp := &Response{
		Existing:          result.Existing,
		Message:           result.Message,
		NeedsRegistration: !result.Existing,
	}
	if result.Existing {
		resp.Token = result.Token
	}

	uc.logger.Info("VerifyOTP: login succeeded, existing=%t", result.Existing)
	return resp, nil
}
