package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable value")

	// Ошибки валидации запросов (400 Bad Request)
	ErrStatusBadRequest      = fmt.Errorf("bad request")
	ErrUnknownCatalog        = fmt.Errorf("unknown catalog name")
	ErrNegativeLimit         = fmt.Errorf("limit must not be negative")
	ErrNegativeOffset        = fmt.Errorf("offset must not be negative")
	ErrInvalidClassification = fmt.Errorf("price classification must be one of OK, HIGH, NA")
	ErrInvalidMatchID        = fmt.Errorf("match id must be a positive integer")

	// Ошибки целостности данных каталога
	ErrBlankGroupingKey = fmt.Errorf("catalog entry has blank article or brand")

	// Ошибки чтения (404 Not Found)
	ErrMatchNotFound = fmt.Errorf("catalog match not found")

	// Ошибки пересчёта
	ErrRecomputeInProgress = fmt.Errorf("recompute run already in progress")
	ErrNoCurrentVersion    = fmt.Errorf("catalog has no committed dataset version")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
