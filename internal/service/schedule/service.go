package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-DoctorBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-DoctorBooking/internal/service/schedule/models"
)

// Service сервис настроек окна записи врачей
type Service struct {
	repo   ScheduleRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo ScheduleRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetSchedule возвращает настройки врача, при их отсутствии - значения по умолчанию
func (s *Service) GetSchedule(ctx context.Context, doctorID string) (*domain.DoctorSchedule, error) {
	schedule, err := s.repo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return domain.DefaultDoctorSchedule(doctorID), nil
		}
		s.logger.Error("GetSchedule: repository error for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}
	return schedule, nil
}

// Get возвращает настройки врача для API
func (s *Service) Get(ctx context.Context, doctorID string) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for doctor=%s", doctorID)

	schedule, err := s.GetSchedule(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSchedule(schedule), nil
}

// Update частично обновляет настройки врача
// Если настроек не было, изменения применяются к значениям по умолчанию
func (s *Service) Update(ctx context.Context, doctorID string, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for doctor=%s", doctorID)

	if doctorID == "" {
		return nil, fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}

	// 1. Текущие настройки (или значения по умолчанию)
	current, err := s.GetSchedule(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	// 2. Применяем изменения к копии и валидируем
	updated := *current
	req.ApplyTo(&updated)

	if err := validateSchedule(&updated); err != nil {
		s.logger.Warn("Update: validation failed for doctor=%s: %v", doctorID, err)
		return nil, err
	}

	// 3. Сохраняем
	saved, err := s.repo.Upsert(ctx, &updated)
	if err != nil {
		s.logger.Error("Update: repository error for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: schedule for doctor=%s saved: %s-%s step=%d window=%d horizon=%d",
		doctorID, saved.OpenTime, saved.CloseTime, saved.SlotStepMinutes, saved.WindowDays, saved.MaxHorizonDays)
	return models.FromDomainSchedule(saved), nil
}

// validateSchedule проверяет согласованность настроек
func validateSchedule(s *domain.DoctorSchedule) error {
	hours, err := s.BusinessHours()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if hours.OpenMinutes >= hours.CloseMinutes {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	if hours.StepMinutes < domain.MinSlotStepMinutes || hours.StepMinutes > domain.MaxSlotStepMinutes {
		return fmt.Errorf("%w: slotStepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSlotStepMinutes, domain.MaxSlotStepMinutes)
	}

	if (hours.CloseMinutes-hours.OpenMinutes)%hours.StepMinutes != 0 {
		return fmt.Errorf("%w: slotStepMinutes must divide the opening hours", ErrInvalidInput)
	}

	if s.WindowDays < domain.MinWindowDays || s.WindowDays > domain.MaxWindowDays {
		return fmt.Errorf("%w: windowDays must be between %d and %d",
			ErrInvalidInput, domain.MinWindowDays, domain.MaxWindowDays)
	}

	if s.MaxHorizonDays < s.WindowDays || s.MaxHorizonDays > domain.MaxHorizonDays {
		return fmt.Errorf("%w: maxHorizonDays must be between windowDays and %d",
			ErrInvalidInput, domain.MaxHorizonDays)
	}

	return nil
}
