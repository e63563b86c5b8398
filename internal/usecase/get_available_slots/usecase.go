package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	professionalRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/professional"
	ruleRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/rule"
	"github.com/m04kA/SMC-MedicalBooking/pkg/ptr"
	"github.com/m04kA/SMC-MedicalBooking/pkg/types"
)

// UseCase use case для получения свободных слотов специалиста
type UseCase struct {
	professionalRepo ProfessionalRepository
	ruleRepo         RuleRepository
	bookingRepo      BookingRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	professionalRepo ProfessionalRepository,
	ruleRepo RuleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		ruleRepo:         ruleRepo,
		bookingRepo:      bookingRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения свободных слотов
// Без даты возвращает сами правила специалиста (режим просмотра расписания)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.ProfessionalID <= 0 {
		return nil, fmt.Errorf("%w: professional id must be positive", ErrInvalidInput)
	}
	if req.CabinetID != nil && *req.CabinetID <= 0 {
		return nil, fmt.Errorf("%w: cabinet id must be positive", ErrInvalidInput)
	}

	// 1. Специалист должен существовать
	if _, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	filter := ruleRepo.Filter{
		ProfessionalID: req.ProfessionalID,
		CabinetID:      req.CabinetID,
	}

	// 2. Без даты - просто правила
	if req.Date == nil {
		rules, err := uc.ruleRepo.List(ctx, filter)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to list rules of professional id=%d: %v", req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: failed to list rules: %v", ErrInternal, err)
		}
		return &Response{Rules: rules}, nil
	}

	date := domain.DateOnly(*req.Date)

	// 3. Правила дня недели
	filter.Weekday = ptr.Ptr(domain.DayIndex(date))
	rules, err := uc.ruleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list rules of professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to list rules: %v", ErrInternal, err)
	}

	if len(rules) == 0 {
		return &Response{Date: &date, Slots: []types.TimeString{}}, nil
	}

	// 4. Живые бронирования дня
	bookings, err := uc.bookingRepo.ListActiveForDay(ctx, req.ProfessionalID, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	slots := resolveSlots(rules, bookings)

	uc.logger.Info("GetAvailableSlots: professional=%d, date=%s: %d rules, %d bookings, %d free slots",
		req.ProfessionalID, date.Format(domain.DateFormat), len(rules), len(bookings), len(slots))

	return &Response{Date: &date, Slots: slots}, nil
}
