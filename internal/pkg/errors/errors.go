package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или выборка пуста.
	ErrNotFound = errors.New("record not found")

	// ErrValidation используется для ошибок валидации входных данных (400).
	ErrValidation = errors.New("validation failed")

	// ErrUnprocessable используется, когда входные данные корректны,
	// но хранилище не смогло выполнить изменение (422).
	ErrUnprocessable = errors.New("unprocessable entity")
)

// FieldViolation описывает одно нарушение правила валидации
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// ValidationError собирает все нарушения запроса сразу, а не только первое.
// errors.Is(err, ErrValidation) для неё возвращает true.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError создает ошибку валидации из списка нарушений
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Param != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", v.Field, v.Rule, v.Param))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Rule))
		}
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Unwrap позволяет использовать errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
