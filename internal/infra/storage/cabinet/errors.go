package cabinet

import "errors"

var (
	// ErrCabinetNotFound возвращается, когда кабинет не найден
	ErrCabinetNotFound = errors.New("cabinet.repository: cabinet not found")

	// ErrAffiliationNotFound возвращается, когда специалист не связан с кабинетом
	ErrAffiliationNotFound = errors.New("cabinet.repository: affiliation not found")

	// ErrAlreadyAffiliated повторная привязка специалиста к кабинету
	ErrAlreadyAffiliated = errors.New("cabinet.repository: professional already affiliated with cabinet")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cabinet.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cabinet.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cabinet.repository: failed to scan row")
)
