package reason

import "errors"

var (
	// ErrReasonNotFound возвращается, когда мотив консультации не найден
	ErrReasonNotFound = errors.New("reason.repository: consultation reason not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reason.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reason.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reason.repository: failed to scan row")
)
