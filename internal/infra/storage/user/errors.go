package user

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrUsernameTaken имя пользователя занято
	ErrUsernameTaken = errors.New("user.repository: username already taken")

	// ErrEmailTaken email занят
	ErrEmailTaken = errors.New("user.repository: email already taken")

	// ErrSocialSecurityTaken номер социального страхования уже зарегистрирован
	ErrSocialSecurityTaken = errors.New("user.repository: social security number already registered")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
