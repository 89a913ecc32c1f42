package analytics

import (
	"errors"
	"fmt"

	"github.com/shenikar/crime_analytics/internal/models"
)

// ErrStoreUnavailable - хранилище не ответило, запрос можно повторить позже
var ErrStoreUnavailable = errors.New("analytics store unavailable")

// ValidationError - некорректный входной параметр, отклоняется до обращения к хранилищу
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation сообщает, является ли ошибка ошибкой валидации входных данных
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ValidateCategory проверяет необязательный фильтр категории
func ValidateCategory(c *models.Category) error {
	if c != nil && !c.Valid() {
		return invalid("crime_type", "unknown category %q", string(*c))
	}
	return nil
}

// ValidatePositive проверяет, что числовой параметр больше нуля
func ValidatePositive(field string, v float64) error {
	if !(v > 0) {
		return invalid(field, "must be positive")
	}
	return nil
}
