package models

import (
	"time"

	"github.com/m04kA/SMC-DoctorBooking/internal/domain"
	"github.com/m04kA/SMC-DoctorBooking/pkg/types"
)

// UpdateScheduleRequest запрос на изменение настроек окна записи
// Все поля опциональны: непереданные берутся из текущих настроек (или значений по умолчанию)
type UpdateScheduleRequest struct {
	OpenTime        *types.TimeString `json:"openTime,omitempty"`
	CloseTime       *types.TimeString `json:"closeTime,omitempty"`
	SlotStepMinutes *int              `json:"slotStepMinutes,omitempty"`
	WindowDays      *int              `json:"windowDays,omitempty"`
	MaxHorizonDays  *int              `json:"maxHorizonDays,omitempty"`
}

// ApplyTo применяет переданные поля к настройкам
func (r *UpdateScheduleRequest) ApplyTo(s *domain.DoctorSchedule) {
	if r.OpenTime != nil {
		s.OpenTime = *r.OpenTime
	}
	if r.CloseTime != nil {
		s.CloseTime = *r.CloseTime
	}
	if r.SlotStepMinutes != nil {
		s.SlotStepMinutes = *r.SlotStepMinutes
	}
	if r.WindowDays != nil {
		s.WindowDays = *r.WindowDays
	}
	if r.MaxHorizonDays != nil {
		s.MaxHorizonDays = *r.MaxHorizonDays
	}
}

// ScheduleResponse настройки окна записи врача
type ScheduleResponse struct {
	DoctorID        string           `json:"doctorId"`
	OpenTime        types.TimeString `json:"openTime"`
	CloseTime       types.TimeString `json:"closeTime"`
	SlotStepMinutes int              `json:"slotStepMinutes"`
	WindowDays      int              `json:"windowDays"`
	MaxHorizonDays  int              `json:"maxHorizonDays"`
	IsDefault       bool             `json:"isDefault"` // Настройки не сохранены, действуют значения по умолчанию
	UpdatedAt       *time.Time       `json:"updatedAt,omitempty"`
}

// FromDomainSchedule конвертирует доменную модель в ответ
func FromDomainSchedule(s *domain.DoctorSchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		DoctorID:        s.DoctorID,
		OpenTime:        s.OpenTime,
		CloseTime:       s.CloseTime,
		SlotStepMinutes: s.SlotStepMinutes,
		WindowDays:      s.WindowDays,
		MaxHorizonDays:  s.MaxHorizonDays,
		IsDefault:       !s.IsPersisted(),
	}
	if s.IsPersisted() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
