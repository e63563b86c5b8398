package models

import (
	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

// CreateRuleRequest запрос на создание правила доступности
type CreateRuleRequest struct {
	CabinetID   int64
	Weekday     int
	StartTime   types.TimeString
	EndTime     types.TimeString
	SlotMinutes *int // nil = значение по умолчанию
}

// ToDomainRule конвертирует запрос в правило специалиста
func (r *CreateRuleRequest) ToDomainRule(professionalID int64) *domain.AvailabilityRule {
	slot := domain.DefaultSlotMinutes
	if r.SlotMinutes != nil {
		slot = *r.SlotMinutes
	}
	return &domain.AvailabilityRule{
		ProfessionalID: professionalID,
		CabinetID:      r.CabinetID,
		Weekday:        r.Weekday,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		SlotMinutes:    slot,
	}
}

// UpdateRuleRequest частичное обновление правила - меняются только указанные поля
type UpdateRuleRequest struct {
	CabinetID   *int64
	Weekday     *int
	StartTime   *types.TimeString
	EndTime     *types.TimeString
	SlotMinutes *int
}

// Apply накладывает изменения на правило
func (r *UpdateRuleRequest) Apply(rule *domain.AvailabilityRule) {
	if r.CabinetID != nil {
		rule.CabinetID = *r.CabinetID
	}
	if r.Weekday != nil {
		rule.Weekday = *r.Weekday
	}
	if r.StartTime != nil {
		rule.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		rule.EndTime = *r.EndTime
	}
	if r.SlotMinutes != nil {
		rule.SlotMinutes = *r.SlotMinutes
	}
}
