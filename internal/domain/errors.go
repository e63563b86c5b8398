package domain

import "errors"

// Корневые виды ошибок. Ошибки пакетов оборачивают один из них,
// HTTP-слой выбирает по ним код ответа
var (
	// ErrValidation некорректные входные данные (400)
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized нет сессии или она недействительна (401)
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden у вызывающего нет прав на операцию (403)
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound сущность не найдена (404)
	ErrNotFound = errors.New("not found")

	// ErrConflict операция нарушает инвариант хранилища (409)
	ErrConflict = errors.New("conflict")
)

// Kind возвращает короткое имя вида ошибки для ответа API
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	default:
		return "internal"
	}
}
