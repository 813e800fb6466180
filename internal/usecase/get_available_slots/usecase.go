package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	clinicClient "github.com/m04kA/SMC-DoctorBooking/internal/integrations/clinicapi"
)

// UseCase use case для получения окна свободных слотов врача
type UseCase struct {
	doctors      DoctorProvider
	schedules    ScheduleProvider
	metrics      MetricsRecorder
	labelLayout  string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// loc - часовой пояс клиники, в котором считаются даты и часы приема
func NewUseCase(
	doctors DoctorProvider,
	schedules ScheduleProvider,
	metrics MetricsRecorder,
	labelLayout string,
	loc *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctors:      doctors,
		schedules:    schedules,
		metrics:      metrics,
		labelLayout:  labelLayout,
		timeProvider: &RealTimeProvider{Location: loc},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: doctor=%s, days=%d", req.DoctorID, req.Days)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Фиксируем текущее время один раз на весь расчет
	now := uc.timeProvider.Now()

	// 3. Получаем врача вместе с занятыми слотами
	doctor, err := uc.doctors.GetDoctor(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, clinicClient.ErrDoctorNotFound) {
			uc.logger.Warn("GetAvailableSlots: doctor id=%s not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 4. Получаем настройки окна записи
	schedule, err := uc.schedules.GetSchedule(ctx, req.DoctorID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	hours, err := schedule.BusinessHours()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: broken schedule for doctor id=%s: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: invalid schedule: %v", ErrInternal, err)
	}

	// 5. Генерируем окно
	started := time.Now()
	generator := NewGenerator(hours, schedule.MaxHorizonDays, uc.labelLayout)
	window := generator.Generate(now, doctor.SlotsBooked, targetDays(req, schedule))
	uc.metrics.ObserveSlotWindow(doctor.ID, len(window.Buckets), window.Truncated, time.Since(started))

	if window.Truncated {
		uc.logger.Warn("GetAvailableSlots: window for doctor id=%s truncated after %d days with %d dates",
			req.DoctorID, window.ScannedDays, len(window.Buckets))
	}

	uc.logger.Info("GetAvailableSlots: generated %d dates with %d slots for doctor=%s",
		len(window.Buckets), window.TotalSlots(), req.DoctorID)

	return &Response{
		DoctorID:    doctor.ID,
		DoctorName:  doctor.Name,
		GeneratedAt: now,
		Window:      window,
	}, nil
}
