package favorites

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	favoriteRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/favorite"
	professionalRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/professional"
)

// Service избранные специалисты пациента
type Service struct {
	favoriteRepo     FavoriteRepository
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса избранного
func NewService(favoriteRepo FavoriteRepository, professionalRepo ProfessionalRepository, logger Logger) *Service {
	return &Service{
		favoriteRepo:     favoriteRepo,
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// Add добавляет специалиста в избранное
func (s *Service) Add(ctx context.Context, caller domain.Identity, professionalID int64) (*domain.Favorite, error) {
	if !caller.IsPatient() {
		return nil, ErrNotPatient
	}

	pro, err := s.professionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("Add: failed to get professional id=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Add - get professional: %v", ErrInternal, err)
	}

	fav, err := s.favoriteRepo.Add(ctx, caller.UserID, professionalID)
	if err != nil {
		switch {
		case errors.Is(err, favoriteRepo.ErrAlreadyFavorite):
			return nil, ErrAlreadyFavorite
		case errors.Is(err, favoriteRepo.ErrUnknownProfessional):
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("Add: repository error for patient=%d: %v", caller.UserID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	fav.Professional = pro
	s.logger.Info("Add: patient=%d added professional=%d to favorites", caller.UserID, professionalID)
	return fav, nil
}

// Remove убирает специалиста из избранного
func (s *Service) Remove(ctx context.Context, caller domain.Identity, professionalID int64) error {
	if !caller.IsPatient() {
		return ErrNotPatient
	}

	if err := s.favoriteRepo.Remove(ctx, caller.UserID, professionalID); err != nil {
		if errors.Is(err, favoriteRepo.ErrFavoriteNotFound) {
			return ErrFavoriteNotFound
		}
		s.logger.Error("Remove: repository error for patient=%d: %v", caller.UserID, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: patient=%d removed professional=%d from favorites", caller.UserID, professionalID)
	return nil
}

// List избранное пациента вместе с профилями специалистов, новые первыми
func (s *Service) List(ctx context.Context, caller domain.Identity) ([]*domain.Favorite, error) {
	if !caller.IsPatient() {
		return nil, ErrNotPatient
	}

	favs, err := s.favoriteRepo.ListByPatient(ctx, caller.UserID)
	if err != nil {
		s.logger.Error("List: repository error for patient=%d: %v", caller.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	for _, fav := range favs {
		pro, err := s.professionalRepo.GetByID(ctx, fav.ProfessionalID)
		if err != nil {
			s.logger.Error("List: failed to get professional id=%d: %v", fav.ProfessionalID, err)
			return nil, fmt.Errorf("%w: List - get professional: %v", ErrInternal, err)
		}
		fav.Professional = pro
	}
	return favs, nil
}
