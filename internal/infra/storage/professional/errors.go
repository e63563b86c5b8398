package professional

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("professional.repository: professional not found")

	// ErrDuplicate email, RPPS или пользователь уже заняты другим специалистом
	ErrDuplicate = errors.New("professional.repository: email, rpps or user already used")

	// ErrUnknownSpecialty специальность не существует
	ErrUnknownSpecialty = errors.New("professional.repository: unknown specialty")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("professional.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("professional.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("professional.repository: failed to scan row")
)
