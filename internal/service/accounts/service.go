package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
	professionalRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/professional"
	specialtyRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/specialty"
	userRepo "github.com/m04kA/SMC-MedicalBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-MedicalBooking/internal/service/accounts/models"
)

// Service учётные записи: регистрация, вход, профиль, модерация клиентов
type Service struct {
	userRepo         UserRepository
	professionalRepo ProfessionalRepository
	specialtyRepo    SpecialtyRepository
	tokens           TokenIssuer
	txManager        TransactionManager
	bcryptCost       int
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр сервиса учётных записей
func NewService(
	userRepo UserRepository,
	professionalRepo ProfessionalRepository,
	specialtyRepo SpecialtyRepository,
	tokens TokenIssuer,
	txManager TransactionManager,
	bcryptCost int,
	logger Logger,
) *Service {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:         userRepo,
		professionalRepo: professionalRepo,
		specialtyRepo:    specialtyRepo,
		tokens:           tokens,
		txManager:        txManager,
		bcryptCost:       bcryptCost,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Register создает пользователя. Для специалиста с указанной специальностью
// в той же транзакции создается профиль со временным RPPS в статусе en_attente.
// Неизвестная специальность не мешает регистрации
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*domain.User, error) {
	s.logger.Info("Register: username=%q type=%q", req.Username, req.AccountType)

	role, err := domain.ParseRole(req.AccountType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if role == domain.RoleAdmin {
		return nil, fmt.Errorf("%w: type_compte admin cannot be registered", ErrInvalidInput)
	}

	user := req.ToDomainUser(role)
	if err := validateRegistration(user, req.Password); err != nil {
		s.logger.Warn("Register: invalid input for username=%q: %v", req.Username, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}
	user.PasswordHash = string(hash)

	provision, err := s.shouldProvision(ctx, role, req.SpecialtyID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		if !provision {
			return nil
		}
		_, err := s.professionalRepo.Create(ctx, &domain.Professional{
			UserID:           &user.ID,
			LastName:         user.LastName,
			FirstName:        user.FirstName,
			Email:            user.Email,
			RPPS:             fmt.Sprintf("TEMP%d%d", user.ID, s.timeProvider.Now().Unix()%1000000),
			SpecialtyID:      *req.SpecialtyID,
			ConsultationFee:  domain.DefaultConsultationFee,
			ValidationStatus: domain.ValidationPending,
		})
		return err
	})
	if err != nil {
		return nil, s.userError(err, "Register")
	}

	s.logger.Info("Register: user id=%d created (role=%s, professional profile=%t)", user.ID, user.Role, provision)
	return user, nil
}

// shouldProvision проверяет, нужно ли создавать профиль специалиста
func (s *Service) shouldProvision(ctx context.Context, role domain.Role, specialtyID *int64) (bool, error) {
	if role != domain.RoleProfessional || specialtyID == nil {
		return false, nil
	}

	if _, err := s.specialtyRepo.GetByID(ctx, *specialtyID); err != nil {
		if errors.Is(err, specialtyRepo.ErrSpecialtyNotFound) {
			s.logger.Warn("Register: specialty id=%d not found, professional profile skipped", *specialtyID)
			return false, nil
		}
		s.logger.Error("Register: failed to get specialty id=%d: %v", *specialtyID, err)
		return false, fmt.Errorf("%w: Register - get specialty: %v", ErrInternal, err)
	}
	return true, nil
}

// Login проверяет пароль по email или имени пользователя и выпускает сессию
func (s *Service) Login(ctx context.Context, login, password string) (*models.LoginResult, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, fmt.Errorf("%w: login and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown login=%q", login)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: failed to get user login=%q: %v", login, err)
		return nil, fmt.Errorf("%w: Login - get user: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}
	if user.Status != domain.AccountActive {
		s.logger.Warn("Login: user id=%d has status=%s", user.ID, user.Status)
		return nil, ErrAccountInactive
	}

	now := s.timeProvider.Now()
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Error("Login: failed to touch last login for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - touch last login: %v", ErrInternal, err)
	}
	user.LastLoginAt = &now

	identity := domain.Identity{UserID: user.ID, Role: user.Role}
	professionalID, err := s.resolveProfessional(ctx, user)
	if err != nil {
		return nil, err
	}
	identity.ProfessionalID = professionalID

	token, expiresAt, err := s.tokens.Issue(identity)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d logged in (role=%s)", user.ID, user.Role)
	return &models.LoginResult{User: user, Identity: identity, Token: token, ExpiresAt: expiresAt}, nil
}

// resolveProfessional профиль специалиста по user_id, затем по email (профили, созданные администратором)
func (s *Service) resolveProfessional(ctx context.Context, user *domain.User) (*int64, error) {
	pro, err := s.professionalRepo.GetByUserID(ctx, user.ID)
	if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
		pro, err = s.professionalRepo.GetByEmail(ctx, user.Email)
	}
	switch {
	case errors.Is(err, professionalRepo.ErrProfessionalNotFound):
		return nil, nil
	case err != nil:
		s.logger.Error("Login: failed to resolve professional for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - resolve professional: %v", ErrInternal, err)
	}
	return &pro.ID, nil
}

// GetProfile профиль вызывающего
func (s *Service) GetProfile(ctx context.Context, caller domain.Identity) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, s.userError(err, "GetProfile")
	}
	return user, nil
}

// UpdateProfile частично обновляет профиль вызывающего (роль и пароль не меняются)
func (s *Service) UpdateProfile(ctx context.Context, caller domain.Identity, update *models.ProfileUpdate) (*domain.User, error) {
	s.logger.Info("UpdateProfile: user id=%d", caller.UserID)

	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, s.userError(err, "UpdateProfile")
	}

	update.Apply(user)
	if err := user.ValidateProfile(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !strings.Contains(user.Email, "@") {
		return nil, fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}

	updated, err := s.userRepo.UpdateProfile(ctx, user)
	if err != nil {
		return nil, s.userError(err, "UpdateProfile")
	}

	s.logger.Info("UpdateProfile: user id=%d updated", caller.UserID)
	return updated, nil
}

// ListUsers все учётные записи (администратор)
func (s *Service) ListUsers(ctx context.Context, caller domain.Identity) ([]*domain.User, error) {
	if !caller.IsAdmin() {
		return nil, ErrAdminOnly
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUsers - repository error: %v", ErrInternal, err)
	}
	return users, nil
}

// DeleteUser удаляет учётную запись (администратор), администраторов удалить нельзя
func (s *Service) DeleteUser(ctx context.Context, caller domain.Identity, id int64) error {
	if !caller.IsAdmin() {
		return ErrAdminOnly
	}
	s.logger.Info("DeleteUser: user id=%d by admin=%d", id, caller.UserID)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return s.userError(err, "DeleteUser")
	}
	if user.IsAdmin() {
		s.logger.Warn("DeleteUser: admin=%d tried to delete admin id=%d", caller.UserID, id)
		return ErrCannotDeleteAdmin
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return s.userError(err, "DeleteUser")
	}

	s.logger.Info("DeleteUser: user id=%d deleted", id)
	return nil
}

func validateRegistration(u *domain.User, password string) error {
	if u.Username == "" || u.Email == "" {
		return fmt.Errorf("%w: username and email are required", ErrInvalidInput)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}
	if utf8.RuneCountInString(password) < domain.MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLen)
	}
	if err := u.ValidateProfile(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// userError переводит ошибки репозиториев в ошибки сервиса
func (s *Service) userError(err error, op string) error {
	switch {
	case errors.Is(err, userRepo.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, userRepo.ErrUsernameTaken):
		return ErrUsernameTaken
	case errors.Is(err, userRepo.ErrEmailTaken):
		return ErrEmailTaken
	case errors.Is(err, userRepo.ErrSocialSecurityTaken):
		return ErrSocialSecurityTaken
	case errors.Is(err, professionalRepo.ErrDuplicate):
		return fmt.Errorf("%w: professional profile with this email already exists", ErrEmailTaken)
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
