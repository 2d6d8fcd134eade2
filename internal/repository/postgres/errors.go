package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// integrityViolationClass - класс SQLSTATE 23 (integrity constraint violation)
const integrityViolationClass = "23"

// translateError приводит ошибки драйверов к ошибкам доменного слоя:
// отсутствие записи → apperrors.ErrNotFound, нарушение ограничений → repository.ErrConstraintViolation.
// Остальные ошибки возвращаются как есть.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	if isConstraintViolation(err) {
		return fmt.Errorf("%w: %v", repository.ErrConstraintViolation, err)
	}
	return err
}

// isConstraintViolation проверяет нарушение ограничений для pgx, lib/pq и sqlite3 драйверов
func isConstraintViolation(err error) bool {
	// Ошибки, уже переведенные GORM (TranslateError: true)
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	// pgx/v5 driver (pgconn.PgError)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, integrityViolationClass) {
		return true
	}
	// lib/pq driver
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == integrityViolationClass {
		return true
	}
	// sqlite3 (dev-режим и тесты)
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return true
	}
	return false
}
