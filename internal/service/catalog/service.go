package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	professionalRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/professional"
	specialtyRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/specialty"
)

// Service публичные справочники: специальности, специалисты, кабинеты, мотивы
type Service struct {
	specialtyRepo    SpecialtyRepository
	professionalRepo ProfessionalRepository
	cabinetRepo      CabinetRepository
	reasonRepo       ReasonRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(
	specialtyRepo SpecialtyRepository,
	professionalRepo ProfessionalRepository,
	cabinetRepo CabinetRepository,
	reasonRepo ReasonRepository,
	logger Logger,
) *Service {
	return &Service{
		specialtyRepo:    specialtyRepo,
		professionalRepo: professionalRepo,
		cabinetRepo:      cabinetRepo,
		reasonRepo:       reasonRepo,
		logger:           logger,
	}
}

func (s *Service) ListSpecialties(ctx context.Context) ([]*domain.Specialty, error) {
	specialties, err := s.specialtyRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListSpecialties: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSpecialties - repository error: %v", ErrInternal, err)
	}
	return specialties, nil
}

// ListProfessionals специалисты вместе с их кабинетами, опционально по специальности
func (s *Service) ListProfessionals(ctx context.Context, specialtyID *int64) ([]*domain.Professional, error) {
	pros, err := s.professionalRepo.List(ctx, professionalRepo.Filter{SpecialtyID: specialtyID})
	if err != nil {
		s.logger.Error("ListProfessionals: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProfessionals - repository error: %v", ErrInternal, err)
	}
	if len(pros) == 0 {
		return pros, nil
	}

	ids := make([]int64, 0, len(pros))
	for _, p := range pros {
		ids = append(ids, p.ID)
	}

	cabinets, err := s.cabinetRepo.ListByProfessionals(ctx, ids)
	if err != nil {
		s.logger.Error("ListProfessionals: failed to load cabinets: %v", err)
		return nil, fmt.Errorf("%w: ListProfessionals - load cabinets: %v", ErrInternal, err)
	}
	for _, p := range pros {
		p.Cabinets = cabinets[p.ID]
		if p.Cabinets == nil {
			p.Cabinets = []domain.Cabinet{}
		}
	}
	return pros, nil
}

func (s *Service) ListCabinets(ctx context.Context) ([]*domain.Cabinet, error) {
	cabinets, err := s.cabinetRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCabinets: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCabinets - repository error: %v", ErrInternal, err)
	}
	return cabinets, nil
}

// ListReasons мотивы консультации специальности
func (s *Service) ListReasons(ctx context.Context, specialtyID int64) ([]*domain.ConsultationReason, error) {
	if _, err := s.specialtyRepo.GetByID(ctx, specialtyID); err != nil {
		if errors.Is(err, specialtyRepo.ErrSpecialtyNotFound) {
			return nil, ErrSpecialtyNotFound
		}
		s.logger.Error("ListReasons: failed to get specialty id=%d: %v", specialtyID, err)
		return nil, fmt.Errorf("%w: ListReasons - get specialty: %v", ErrInternal, err)
	}

	reasons, err := s.reasonRepo.ListBySpecialty(ctx, specialtyID)
	if err != nil {
		s.logger.Error("ListReasons: repository error for specialty id=%d: %v", specialtyID, err)
		return nil, fmt.Errorf("%w: ListReasons - repository error: %v", ErrInternal, err)
	}
	return reasons, nil
}
