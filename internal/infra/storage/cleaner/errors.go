package cleaner

import "errors"

var (
	// ErrCleanerNotFound возвращается, когда клинер не найден
	ErrCleanerNotFound = errors.New("cleaner.repository: cleaner not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("cleaner.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("cleaner.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("cleaner.repository: failed to scan row")
)
