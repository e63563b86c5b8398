package bookings

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-MedicalBooking/pkg/ptr"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// UpdateStatus меняет статус бронирования
// Менять статус могут пациент и специалист бронирования, заметки - только специалист.
// Возврат отменённого бронирования в живой статус заново проверяет пересечения и дубликат записи под блокировкой дня
func (s *Service) UpdateStatus(
	ctx context.Context,
	caller domain.Identity,
	bookingID int64,
	rawStatus string,
	professionalNotes *string,
) (*domain.Booking, error) {
	s.logger.Info("UpdateStatus: booking id=%d to status=%q by user=%d", bookingID, rawStatus, caller.UserID)

	if bookingID <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}
	status, err := domain.ParseBookingStatus(rawStatus)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for booking id=%d", rawStatus, bookingID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}
	if professionalNotes != nil && utf8.RuneCountInString(*professionalNotes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes_professionnel longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	now := s.timeProvider.Now()
	var result *domain.Booking

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - get booking: %w", ErrInternal, err)
		}

		if !domain.CanTransitionBooking(caller, booking) {
			return ErrAccessDenied
		}
		if professionalNotes != nil && !caller.OwnsProfessional(booking.ProfessionalID) {
			return ErrNotesForbidden
		}

		// Отменённое бронирование не держит слот: перед возвратом проверяем, что слот свободен
		if !booking.IsActive() && status.IsLive() {
			if err := s.bookingRepo.LockDay(txCtx, booking.ProfessionalID, booking.Date); err != nil {
				return fmt.Errorf("%w: UpdateStatus - lock day: %w", ErrInternal, err)
			}
			overlapping, err := s.bookingRepo.CountOverlapping(txCtx, booking.ProfessionalID, booking.Date,
				booking.StartTime, booking.EndTime, ptr.Ptr(booking.ID))
			if err != nil {
				return fmt.Errorf("%w: UpdateStatus - count overlapping: %w", ErrInternal, err)
			}
			if overlapping > 0 {
				return ErrSlotNotAvailable
			}
			hasUpcoming, err := s.bookingRepo.HasUpcomingWithProfessional(txCtx, booking.PatientID, booking.ProfessionalID,
				domain.DateOnly(now), ptr.Ptr(booking.ID))
			if err != nil {
				return fmt.Errorf("%w: UpdateStatus - check upcoming: %w", ErrInternal, err)
			}
			if hasUpcoming {
				return ErrAlreadyBooked
			}
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, booking.ID, status, professionalNotes, now); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - update: %w", ErrInternal, err)
		}

		booking.Status = status
		booking.UpdatedAt = now
		if status == domain.StatusCancelled {
			booking.CancelledAt = ptr.Ptr(now)
		} else {
			booking.CancelledAt = nil
		}
		if professionalNotes != nil {
			booking.ProfessionalNotes = professionalNotes
		}
		result = booking
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
		case errors.Is(err, domain.ErrForbidden):
			s.logger.Warn("UpdateStatus: user=%d not allowed on booking id=%d: %v", caller.UserID, bookingID, err)
		case errors.Is(err, ErrSlotNotAvailable):
			s.logger.Warn("UpdateStatus: booking id=%d cannot be restored, slot taken", bookingID)
		case errors.Is(err, ErrAlreadyBooked):
			s.logger.Warn("UpdateStatus: booking id=%d cannot be restored, patient already booked with professional", bookingID)
		default:
			s.logger.Error("UpdateStatus: failed for booking id=%d: %v", bookingID, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: UpdateStatus: %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%d is now %s", bookingID, status)
	return result, nil
}

// GetPatientBookings бронирования пациента, все статусы, по дате и времени
func (s *Service) GetPatientBookings(ctx context.Context, caller domain.Identity) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx, domain.BookingFilter{
		PatientID:        ptr.Ptr(caller.UserID),
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("GetPatientBookings: repository error for user=%d: %v", caller.UserID, err)
		return nil, fmt.Errorf("%w: GetPatientBookings - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// GetProfessionalBookings бронирования специалиста вызывающего
func (s *Service) GetProfessionalBookings(ctx context.Context, caller domain.Identity) ([]*domain.Booking, error) {
	if !caller.IsProfessional() {
		s.logger.Warn("GetProfessionalBookings: user=%d has no professional profile", caller.UserID)
		return nil, ErrNotProfessional
	}

	bookings, err := s.bookingRepo.List(ctx, domain.BookingFilter{
		ProfessionalID:   caller.ProfessionalID,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("GetProfessionalBookings: repository error for professional=%d: %v", *caller.ProfessionalID, err)
		return nil, fmt.Errorf("%w: GetProfessionalBookings - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// ListAll все бронирования для администратора
func (s *Service) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}
	return bookings, nil
}

// Delete удаляет бронирование (администратор)
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Delete: booking id=%d deleted", bookingID)
	return nil
}
