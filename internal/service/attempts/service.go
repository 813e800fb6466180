package attempts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/internal/service/attempts/models"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Service сервис журнала попыток бронирования
type Service struct {
	repo   AttemptRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo AttemptRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Record сохраняет попытку бронирования
func (s *Service) Record(ctx context.Context, attempt *domain.BookingAttempt) error {
	if _, err := s.repo.Create(ctx, attempt); err != nil {
		return fmt.Errorf("%w: Record - repository error: %v", ErrInternal, err)
	}
	return nil
}

// List возвращает последние попытки по врачу
// limit = 0 заменяется на DefaultListLimit
func (s *Service) List(ctx context.Context, doctorID string, limit int) (*models.AttemptListResponse, error) {
	s.logger.Info("List: fetching booking attempts for doctor=%s, limit=%d", doctorID, limit)

	if doctorID == "" {
		return nil, fmt.Errorf("%w: doctorID is required", ErrInvalidInput)
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 0 || limit > MaxListLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxListLimit)
	}

	attempts, err := s.repo.ListByDoctor(ctx, doctorID, limit)
	if err != nil {
		s.logger.Error("List: repository error for doctor=%s: %v", doctorID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAttemptList(attempts), nil
}
