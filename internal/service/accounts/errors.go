package accounts

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MedicalBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("accounts: invalid input data: %w", domain.ErrValidation)

	// ErrUsernameTaken имя пользователя занято
	ErrUsernameTaken = fmt.Errorf("accounts: username already taken: %w", domain.ErrConflict)

	// ErrEmailTaken email занят
	ErrEmailTaken = fmt.Errorf("accounts: email already taken: %w", domain.ErrConflict)

	// ErrSocialSecurityTaken номер социального страхования уже зарегистрирован
	ErrSocialSecurityTaken = fmt.Errorf("accounts: social security number already registered: %w", domain.ErrConflict)

	// ErrInvalidCredentials неверный логин или пароль
	ErrInvalidCredentials = fmt.Errorf("accounts: invalid credentials: %w", domain.ErrUnauthorized)

	// ErrAccountInactive учётная запись отключена или приостановлена
	ErrAccountInactive = fmt.Errorf("accounts: account is not active: %w", domain.ErrForbidden)

	// ErrUserNotFound пользователь не найден
	ErrUserNotFound = fmt.Errorf("accounts: user not found: %w", domain.ErrNotFound)

	// ErrAdminOnly операция доступна только администратору
	ErrAdminOnly = fmt.Errorf("accounts: administrator role required: %w", domain.ErrForbidden)

	// ErrCannotDeleteAdmin администратора удалить нельзя
	ErrCannotDeleteAdmin = fmt.Errorf("accounts: administrators cannot be deleted: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("accounts: internal error")
)
