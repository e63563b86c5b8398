package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	cabinetRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/cabinet"
	ruleRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/rule"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/availability/models"
)

// Service сервис еженедельных правил доступности специалиста
type Service struct {
	ruleRepo    RuleRepository
	cabinetRepo CabinetRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(ruleRepo RuleRepository, cabinetRepo CabinetRepository, logger Logger) *Service {
	return &Service{
		ruleRepo:    ruleRepo,
		cabinetRepo: cabinetRepo,
		logger:      logger,
	}
}

// List правила специалиста вызывающего
func (s *Service) List(ctx context.Context, caller domain.Identity) ([]*domain.AvailabilityRule, error) {
	professionalID, err := s.professionalOf(caller, "List")
	if err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.List(ctx, ruleRepo.Filter{ProfessionalID: professionalID})
	if err != nil {
		s.logger.Error("List: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return rules, nil
}

// Create создает правило
func (s *Service) Create(ctx context.Context, caller domain.Identity, req *models.CreateRuleRequest) (*domain.AvailabilityRule, error) {
	professionalID, err := s.professionalOf(caller, "Create")
	if err != nil {
		return nil, err
	}

	rule := req.ToDomainRule(professionalID)
	if err := s.validate(ctx, rule, "Create"); err != nil {
		return nil, err
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("Create: repository error for professional=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: rule id=%d created for professional=%d (day=%d %s-%s/%d)",
		created.ID, professionalID, created.Weekday, created.StartTime, created.EndTime, created.SlotMinutes)
	return created, nil
}

// Update частично обновляет правило
func (s *Service) Update(ctx context.Context, caller domain.Identity, id int64, req *models.UpdateRuleRequest) (*domain.AvailabilityRule, error) {
	professionalID, err := s.professionalOf(caller, "Update")
	if err != nil {
		return nil, err
	}

	rule, err := s.ruleRepo.GetByID(ctx, professionalID, id)
	if err != nil {
		return nil, s.ruleError(err, id, "Update")
	}

	req.Apply(rule)
	if err := s.validate(ctx, rule, "Update"); err != nil {
		return nil, err
	}

	updated, err := s.ruleRepo.Update(ctx, rule)
	if err != nil {
		return nil, s.ruleError(err, id, "Update")
	}

	s.logger.Info("Update: rule id=%d updated by professional=%d", id, professionalID)
	return updated, nil
}

// Delete удаляет правило
func (s *Service) Delete(ctx context.Context, caller domain.Identity, id int64) error {
	professionalID, err := s.professionalOf(caller, "Delete")
	if err != nil {
		return err
	}

	if err := s.ruleRepo.Delete(ctx, professionalID, id); err != nil {
		return s.ruleError(err, id, "Delete")
	}

	s.logger.Info("Delete: rule id=%d deleted by professional=%d", id, professionalID)
	return nil
}

func (s *Service) professionalOf(caller domain.Identity, op string) (int64, error) {
	if !caller.IsProfessional() {
		s.logger.Warn("%s: user=%d has no professional profile", op, caller.UserID)
		return 0, ErrNotProfessional
	}
	return *caller.ProfessionalID, nil
}

// validate проверяет поля правила и кабинет: он должен существовать и быть привязан к специалисту
func (s *Service) validate(ctx context.Context, rule *domain.AvailabilityRule, op string) error {
	if err := rule.Validate(); err != nil {
		s.logger.Warn("%s: invalid rule for professional=%d: %v", op, rule.ProfessionalID, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.cabinetRepo.GetByID(ctx, rule.CabinetID); err != nil {
		if errors.Is(err, cabinetRepo.ErrCabinetNotFound) {
			s.logger.Warn("%s: cabinet id=%d not found", op, rule.CabinetID)
			return ErrCabinetNotFound
		}
		s.logger.Error("%s: failed to get cabinet id=%d: %v", op, rule.CabinetID, err)
		return fmt.Errorf("%w: %s - get cabinet: %v", ErrInternal, op, err)
	}

	affiliated, err := s.cabinetRepo.IsAffiliated(ctx, rule.ProfessionalID, rule.CabinetID)
	if err != nil {
		s.logger.Error("%s: failed to check affiliation: %v", op, err)
		return fmt.Errorf("%w: %s - check affiliation: %v", ErrInternal, op, err)
	}
	if !affiliated {
		s.logger.Warn("%s: professional=%d is not affiliated with cabinet id=%d", op, rule.ProfessionalID, rule.CabinetID)
		return ErrCabinetNotAffiliated
	}
	return nil
}

func (s *Service) ruleError(err error, id int64, op string) error {
	if errors.Is(err, ruleRepo.ErrRuleNotFound) {
		s.logger.Warn("%s: rule id=%d not found", op, id)
		return ErrRuleNotFound
	}
	s.logger.Error("%s: repository error for rule id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
