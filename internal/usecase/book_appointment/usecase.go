package book_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicapi"
)

// UseCase use case для записи к врачу через внешний API
type UseCase struct {
	clinic       ClinicClient
	attempts     AttemptRecorder
	cache        CacheInvalidator
	labelLayout  string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// attempts и cache могут быть nil: журнал и кеш не обязательны
func NewUseCase(
	clinic ClinicClient,
	attempts AttemptRecorder,
	cache CacheInvalidator,
	labelLayout string,
	loc *time.Location,
	logger Logger,
) *UseCase {
	if labelLayout == "" {
		labelLayout = domain.TimeLabelLayout
	}
	return &UseCase{
		clinic:       clinic,
		attempts:     attempts,
		cache:        cache,
		labelLayout:  labelLayout,
		timeProvider: &RealTimeProvider{Location: loc},
		logger:       logger,
	}
}

// Execute выполняет use case записи к врачу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: doctor=%s, date=%s, time=%s", req.DoctorID, req.SlotDate, req.SlotTime)

	// 1. Без токена записаться нельзя
	if strings.TrimSpace(req.Token) == "" {
		uc.logger.Warn("BookAppointment: missing session token")
		return nil, ErrUnauthorized
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	start, err := slotStart(req, uc.labelLayout, now)
	if err != nil {
		uc.logger.Warn("BookAppointment: invalid slot: %v", err)
		return nil, err
	}

	// 3. Прошедший слот не отправляем во внешний API
	if err := validateNotInPast(start, now); err != nil {
		uc.logger.Warn("BookAppointment: %v", err)
		return nil, err
	}

	// 4. Отправляем запись
	result, err := uc.clinic.BookAppointment(ctx, req.Token, clinicapi.BookRequest{
		DocID:    req.DoctorID,
		SlotDate: req.SlotDate,
		SlotTime: req.SlotTime,
	})
	if err != nil {
		if errors.Is(err, clinicapi.ErrUnauthorized) {
			uc.logger.Warn("BookAppointment: session token rejected by clinic API")
			return nil, ErrUnauthorized
		}
		uc.logger.Error("BookAppointment: clinic API call failed: %v", err)
		return nil, fmt.Errorf("%w: failed to book appointment: %v", ErrInternal, err)
	}

	// 5. Журнал попыток (ошибки журнала не влияют на ответ)
	uc.recordAttempt(ctx, req, result)

	if !result.Success {
		uc.logger.Warn("BookAppointment: rejected by clinic API: %s", result.Message)
		return nil, &RejectedError{Message: result.Message}
	}

	// 6. Сбрасываем кеш, чтобы занятый слот пропал из окна
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			uc.logger.Warn("BookAppointment: failed to invalidate doctors cache: %v", err)
		}
	}

	uc.logger.Info("BookAppointment: booked doctor=%s at %s %s", req.DoctorID, req.SlotDate, req.SlotTime)

	return &Response{
		Success: true,
		Message: result.Message,
	}, nil
}

func (uc *UseCase) recordAttempt(ctx context.Context, req *Request, result *clinicapi.Result) {
	if uc.attempts == nil {
		return
	}

	err := uc.attempts.Record(ctx, &domain.BookingAttempt{
		DoctorID: req.DoctorID,
		SlotDate: req.SlotDate,
		SlotTime: req.SlotTime,
		Success:  result.Success,
		Message:  result.Message,
	})
	if err != nil {
		uc.logger.Warn("BookAppointment: failed to record attempt: %v", err)
	}
}
