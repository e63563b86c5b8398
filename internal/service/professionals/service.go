package professionals

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	professionalRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/professional"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/professionals/models"
)

// Service профили специалистов: собственный профиль и управление администратором
type Service struct {
	professionalRepo ProfessionalRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса специалистов
func NewService(professionalRepo ProfessionalRepository, logger Logger) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// GetOwn профиль специалиста вызывающего
func (s *Service) GetOwn(ctx context.Context, caller domain.Identity) (*domain.Professional, error) {
	if !caller.IsProfessional() {
		return nil, ErrNotProfessional
	}
	return s.get(ctx, *caller.ProfessionalID, "GetOwn")
}

// UpdateOwn меняет тариф, телеконсультацию, био, фото и телефон своего профиля
func (s *Service) UpdateOwn(ctx context.Context, caller domain.Identity, update *models.ProfileUpdate) (*domain.Professional, error) {
	if !caller.IsProfessional() {
		return nil, ErrNotProfessional
	}
	s.logger.Info("UpdateOwn: professional id=%d", *caller.ProfessionalID)

	pro, err := s.get(ctx, *caller.ProfessionalID, "UpdateOwn")
	if err != nil {
		return nil, err
	}

	update.Apply(pro)
	return s.save(ctx, pro, "UpdateOwn")
}

// List все специалисты (администратор)
func (s *Service) List(ctx context.Context, caller domain.Identity) ([]*domain.Professional, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}

	pros, err := s.professionalRepo.List(ctx, professionalRepo.Filter{})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return pros, nil
}

// Get специалист по id (администратор)
func (s *Service) Get(ctx context.Context, caller domain.Identity, id int64) (*domain.Professional, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}
	return s.get(ctx, id, "Get")
}

// Create создает специалиста (администратор)
func (s *Service) Create(ctx context.Context, caller domain.Identity, pro *domain.Professional) (*domain.Professional, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}
	s.logger.Info("Create: professional email=%q by admin=%d", pro.Email, caller.UserID)

	if strings.TrimSpace(pro.RPPS) == "" {
		return nil, fmt.Errorf("%w: numero_rpps is required", ErrInvalidInput)
	}
	if err := validate(pro); err != nil {
		return nil, err
	}

	created, err := s.professionalRepo.Create(ctx, pro)
	if err != nil {
		return nil, s.repoError(err, "Create")
	}

	s.logger.Info("Create: professional id=%d created", created.ID)
	return created, nil
}

// Update частично обновляет специалиста (администратор)
func (s *Service) Update(ctx context.Context, caller domain.Identity, id int64, update *models.AdminUpdate) (*domain.Professional, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}
	s.logger.Info("Update: professional id=%d by admin=%d", id, caller.UserID)

	pro, err := s.get(ctx, id, "Update")
	if err != nil {
		return nil, err
	}

	update.Apply(pro)
	return s.save(ctx, pro, "Update")
}

// Delete удаляет специалиста (администратор)
func (s *Service) Delete(ctx context.Context, caller domain.Identity, id int64) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}

	if err := s.professionalRepo.Delete(ctx, id); err != nil {
		return s.repoError(err, "Delete")
	}

	s.logger.Info("Delete: professional id=%d deleted by admin=%d", id, caller.UserID)
	return nil
}

// SetValidation записывает решение модерации с датой и администратором
func (s *Service) SetValidation(ctx context.Context, caller domain.Identity, id int64, rawStatus string) (*domain.Professional, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}

	status, err := domain.ParseValidationStatus(rawStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.professionalRepo.SetValidation(ctx, id, status, caller.UserID, s.timeProvider.Now()); err != nil {
		return nil, s.repoError(err, "SetValidation")
	}

	s.logger.Info("SetValidation: professional id=%d set to %s by admin=%d", id, status, caller.UserID)
	return s.get(ctx, id, "SetValidation")
}

func (s *Service) get(ctx context.Context, id int64, op string) (*domain.Professional, error) {
	pro, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.repoError(err, op)
	}
	return pro, nil
}

func (s *Service) save(ctx context.Context, pro *domain.Professional, op string) (*domain.Professional, error) {
	if err := validate(pro); err != nil {
		return nil, err
	}

	updated, err := s.professionalRepo.Update(ctx, pro)
	if err != nil {
		return nil, s.repoError(err, op)
	}

	s.logger.Info("%s: professional id=%d updated", op, pro.ID)
	return updated, nil
}

func validate(p *domain.Professional) error {
	if strings.TrimSpace(p.LastName) == "" || strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("%w: nom and prenom are required", ErrInvalidInput)
	}
	if !strings.Contains(p.Email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if p.SpecialtyID <= 0 {
		return fmt.Errorf("%w: specialite_id is required", ErrInvalidInput)
	}
	if p.ConsultationFee < 0 {
		return fmt.Errorf("%w: tarif_consultation must not be negative", ErrInvalidInput)
	}
	return nil
}

func (s *Service) repoError(err error, op string) error {
	switch {
	case errors.Is(err, professionalRepo.ErrProfessionalNotFound):
		s.logger.Warn("%s: professional not found", op)
		return ErrProfessionalNotFound
	case errors.Is(err, professionalRepo.ErrDuplicate):
		return ErrDuplicate
	case errors.Is(err, professionalRepo.ErrUnknownSpecialty):
		return ErrUnknownSpecialty
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
