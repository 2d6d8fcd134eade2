package repository

import "errors"

var (
	// ErrConstraintViolation означает, что хранилище отклонило изменение из-за
	// нарушения ограничения целостности (FK, CHECK, UNIQUE, NOT NULL).
	ErrConstraintViolation = errors.New("constraint violation")
)
