package favorite

import "errors"

var (
	// ErrFavoriteNotFound возвращается, когда закладки нет
	ErrFavoriteNotFound = errors.New("favorite.repository: favorite not found")

	// ErrAlreadyFavorite специалист уже в избранном
	ErrAlreadyFavorite = errors.New("favorite.repository: professional already in favorites")

	// ErrUnknownProfessional специалист не существует
	ErrUnknownProfessional = errors.New("favorite.repository: unknown professional")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("favorite.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("favorite.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("favorite.repository: failed to scan row")
)
