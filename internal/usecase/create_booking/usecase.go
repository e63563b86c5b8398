package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	cabinetRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/cabinet"
	professionalRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/professional"
	reasonRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/reason"
	"github.com/m04kA/SMC-MedicalBooking/pkg/ptr"
	"github.com/m04kA/SMC-MedicalBooking/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	professionalRepo ProfessionalRepository
	cabinetRepo      CabinetRepository
	reasonRepo       ReasonRepository
	txManager        TransactionManager
	metrics          BookingMetrics
	timeProvider     TimeProvider
	logger           Logger

	defaultDuration int
}

// NewUseCase создает новый экземпляр use case
// defaultDuration - длительность консультации без мотива, в минутах
func NewUseCase(
	bookingRepo BookingRepository,
	professionalRepo ProfessionalRepository,
	cabinetRepo CabinetRepository,
	reasonRepo ReasonRepository,
	txManager TransactionManager,
	metrics BookingMetrics,
	defaultDuration int,
	logger Logger,
) *UseCase {
	if defaultDuration <= 0 {
		defaultDuration = domain.DefaultConsultationMinutes
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		professionalRepo: professionalRepo,
		cabinetRepo:      cabinetRepo,
		reasonRepo:       reasonRepo,
		txManager:        txManager,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
		defaultDuration:  defaultDuration,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка идут в одной сериализуемой транзакции
// под блокировкой дня специалиста
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	booking, err := uc.execute(ctx, req)
	uc.recordOutcome(err)
	return booking, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	uc.logger.Info("CreateBooking: patient=%d, professional=%d, cabinet=%d, date=%s, time=%s",
		req.Identity.UserID, req.ProfessionalID, req.CabinetID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)

	// 2. Специалист и кабинет
	professional, err := uc.professionalRepo.GetByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateBooking: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateBooking: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	if _, err := uc.cabinetRepo.GetByID(ctx, req.CabinetID); err != nil {
		if errors.Is(err, cabinetRepo.ErrCabinetNotFound) {
			uc.logger.Warn("CreateBooking: cabinet id=%d not found", req.CabinetID)
			return nil, ErrCabinetNotFound
		}
		uc.logger.Error("CreateBooking: failed to get cabinet id=%d: %v", req.CabinetID, err)
		return nil, fmt.Errorf("%w: failed to get cabinet: %v", ErrInternal, err)
	}

	// 3. Мотив консультации определяет длительность
	reason, err := uc.resolveReason(ctx, req.ReasonID, professional)
	if err != nil {
		return nil, err
	}

	end, err := endTime(req.StartTime, reason.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	today := domain.DateOnly(uc.timeProvider.Now())

	var result *domain.Booking

	// 4. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.bookingRepo.LockDay(txCtx, req.ProfessionalID, date); err != nil {
			return fmt.Errorf("%w: failed to lock day: %w", ErrInternal, err)
		}

		overlapping, err := uc.bookingRepo.CountOverlapping(txCtx, req.ProfessionalID, date, req.StartTime, end, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to count overlapping bookings: %w", ErrInternal, err)
		}
		if overlapping > 0 {
			return ErrSlotNotAvailable
		}

		hasUpcoming, err := uc.bookingRepo.HasUpcomingWithProfessional(txCtx, req.Identity.UserID, req.ProfessionalID, today, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to check upcoming bookings: %w", ErrInternal, err)
		}
		if hasUpcoming {
			return ErrAlreadyBooked
		}

		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			PatientID:      req.Identity.UserID,
			ProfessionalID: req.ProfessionalID,
			CabinetID:      req.CabinetID,
			ReasonID:       ptr.Ptr(reason.ID),
			Date:           date,
			StartTime:      req.StartTime,
			EndTime:        end,
			Status:         domain.StatusConfirmed,
			Mode:           req.Mode,
			PatientNotes:   req.PatientNotes,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, ErrSlotNotAvailable), errors.Is(err, ErrAlreadyBooked):
		uc.logger.Warn("CreateBooking: patient=%d, professional=%d, date=%s %s-%s: %v",
			req.Identity.UserID, req.ProfessionalID, date.Format(domain.DateFormat), req.StartTime, end, err)
		return nil, err
	case errors.Is(err, txmanager.ErrRetriesExhausted):
		// конкурирующие транзакции так и не дали пройти - слот считается занятым
		uc.logger.Warn("CreateBooking: serialization retries exhausted for professional=%d, date=%s: %v",
			req.ProfessionalID, date.Format(domain.DateFormat), err)
		return nil, ErrSlotNotAvailable
	default:
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	return result, nil
}

// resolveReason возвращает выбранный мотив или общий мотив специальности
func (uc *UseCase) resolveReason(ctx context.Context, reasonID *int64, professional *domain.Professional) (*domain.ConsultationReason, error) {
	if reasonID != nil {
		reason, err := uc.reasonRepo.GetByID(ctx, *reasonID)
		if err != nil {
			if errors.Is(err, reasonRepo.ErrReasonNotFound) {
				uc.logger.Warn("CreateBooking: reason id=%d not found", *reasonID)
				return nil, ErrReasonNotFound
			}
			uc.logger.Error("CreateBooking: failed to get reason id=%d: %v", *reasonID, err)
			return nil, fmt.Errorf("%w: failed to get reason: %v", ErrInternal, err)
		}
		if reason.SpecialtyID != professional.SpecialtyID {
			uc.logger.Warn("CreateBooking: reason id=%d belongs to specialty %d, professional id=%d has %d",
				reason.ID, reason.SpecialtyID, professional.ID, professional.SpecialtyID)
			return nil, ErrReasonSpecialtyMismatch
		}
		return reason, nil
	}

	reason, err := uc.reasonRepo.GetOrCreate(ctx, professional.SpecialtyID, domain.GenericReasonLabel,
		uc.defaultDuration, professional.ConsultationFee)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get generic reason for specialty id=%d: %v", professional.SpecialtyID, err)
		return nil, fmt.Errorf("%w: failed to get generic reason: %v", ErrInternal, err)
	}
	// Общий мотив мог быть создан раньше с другой длительностью, без мотива действует значение по умолчанию
	return &domain.ConsultationReason{
		ID:              reason.ID,
		SpecialtyID:     reason.SpecialtyID,
		Label:           reason.Label,
		DurationMinutes: uc.defaultDuration,
		Fee:             reason.Fee,
	}, nil
}

func (uc *UseCase) recordOutcome(err error) {
	if uc.metrics == nil {
		return
	}
	switch {
	case err == nil:
		uc.metrics.RecordBookingOutcome(OutcomeCreated)
	case errors.Is(err, domain.ErrConflict):
		uc.metrics.RecordBookingOutcome(OutcomeConflict)
	case errors.Is(err, ErrInternal):
		uc.metrics.RecordBookingOutcome(OutcomeError)
	default:
		uc.metrics.RecordBookingOutcome(OutcomeRejected)
	}
}
