package cabinets

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	cabinetRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/cabinet"
)

// Service управляет кабинетами специалиста
type Service struct {
	cabinetRepo  CabinetRepository
	ruleRepo     RuleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса кабинетов
func NewService(cabinetRepo CabinetRepository, ruleRepo RuleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		cabinetRepo:  cabinetRepo,
		ruleRepo:     ruleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List кабинеты специалиста вызывающего
func (s *Service) List(ctx context.Context, caller domain.Identity) ([]*domain.Cabinet, error) {
	professionalID, err := s.professionalOf(caller, "List")
	if err != nil {
		return nil, err
	}

	cabinets, err := s.cabinetRepo.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("List: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return cabinets, nil
}

// Attach создает кабинет и привязывает к нему специалиста одной транзакцией
func (s *Service) Attach(ctx context.Context, caller domain.Identity, cabinet *domain.Cabinet) (*domain.Cabinet, error) {
	professionalID, err := s.professionalOf(caller, "Attach")
	if err != nil {
		return nil, err
	}
	if err := cabinet.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created *domain.Cabinet
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.cabinetRepo.Create(ctx, cabinet)
		if err != nil {
			return err
		}
		return s.cabinetRepo.Affiliate(ctx, domain.Affiliation{
			ProfessionalID: professionalID,
			CabinetID:      created.ID,
			StartDate:      s.timeProvider.Now(),
			IsPrimary:      false,
		})
	})
	if err != nil {
		s.logger.Error("Attach: failed for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Attach - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Attach: cabinet id=%d attached to professional=%d", created.ID, professionalID)
	return created, nil
}

// Update обновляет кабинет, к которому привязан специалист
func (s *Service) Update(ctx context.Context, caller domain.Identity, cabinet *domain.Cabinet) (*domain.Cabinet, error) {
	professionalID, err := s.professionalOf(caller, "Update")
	if err != nil {
		return nil, err
	}
	if err := cabinet.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensureAffiliated(ctx, professionalID, cabinet.ID, "Update"); err != nil {
		return nil, err
	}

	updated, err := s.cabinetRepo.Update(ctx, cabinet)
	if err != nil {
		if errors.Is(err, cabinetRepo.ErrCabinetNotFound) {
			return nil, ErrCabinetNotFound
		}
		s.logger.Error("Update: repository error for cabinet id=%d: %v", cabinet.ID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: cabinet id=%d updated by professional=%d", cabinet.ID, professionalID)
	return updated, nil
}

// Detach отвязывает специалиста от кабинета вместе с его правилами в этом кабинете.
// Кабинет без единой привязки удаляется, бронирования сохраняют его id
func (s *Service) Detach(ctx context.Context, caller domain.Identity, cabinetID int64) error {
	professionalID, err := s.professionalOf(caller, "Detach")
	if err != nil {
		return err
	}

	var removedRules int64
	var cabinetDeleted bool
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// Отвязки одного кабинета идут по очереди, иначе подсчёт привязок видит чужую незакоммиченную
		if err := s.cabinetRepo.LockForUpdate(ctx, cabinetID); err != nil {
			return err
		}
		if err := s.cabinetRepo.Unaffiliate(ctx, professionalID, cabinetID); err != nil {
			return err
		}

		var err error
		removedRules, err = s.ruleRepo.DeleteByCabinet(ctx, professionalID, cabinetID)
		if err != nil {
			return err
		}

		remaining, err := s.cabinetRepo.CountAffiliations(ctx, cabinetID)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		cabinetDeleted = true
		return s.cabinetRepo.Delete(ctx, cabinetID)
	})
	if err != nil {
		if errors.Is(err, cabinetRepo.ErrAffiliationNotFound) || errors.Is(err, cabinetRepo.ErrCabinetNotFound) {
			s.logger.Warn("Detach: professional=%d is not affiliated with cabinet id=%d", professionalID, cabinetID)
			return ErrCabinetNotFound
		}
		s.logger.Error("Detach: failed for cabinet id=%d: %v", cabinetID, err)
		return fmt.Errorf("%w: Detach - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("Detach: professional=%d detached from cabinet id=%d (rules removed=%d, cabinet deleted=%t)",
		professionalID, cabinetID, removedRules, cabinetDeleted)
	return nil
}

func (s *Service) professionalOf(caller domain.Identity, op string) (int64, error) {
	if !caller.IsProfessional() {
		s.logger.Warn("%s: user=%d has no professional profile", op, caller.UserID)
		return 0, ErrNotProfessional
	}
	return *caller.ProfessionalID, nil
}

func (s *Service) ensureAffiliated(ctx context.Context, professionalID, cabinetID int64, op string) error {
	affiliated, err := s.cabinetRepo.IsAffiliated(ctx, professionalID, cabinetID)
	if err != nil {
		s.logger.Error("%s: failed to check affiliation: %v", op, err)
		return fmt.Errorf("%w: %s - check affiliation: %v", ErrInternal, op, err)
	}
	if !affiliated {
		s.logger.Warn("%s: professional=%d is not affiliated with cabinet id=%d", op, professionalID, cabinetID)
		return ErrCabinetNotFound
	}
	return nil
}
