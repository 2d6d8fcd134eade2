package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

func TestTranslateError(t *testing.T) {
	plain := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "record not found", err: gorm.ErrRecordNotFound, want: apperrors.ErrNotFound},
		{name: "gorm foreign key", err: gorm.ErrForeignKeyViolated, want: repository.ErrConstraintViolation},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: repository.ErrConstraintViolation},
		{name: "pgx check violation", err: &pgconn.PgError{Code: "23514"}, want: repository.ErrConstraintViolation},
		{name: "pgx fk violation wrapped", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"}), want: repository.ErrConstraintViolation},
		{name: "lib/pq unique violation", err: &pq.Error{Code: "23505"}, want: repository.ErrConstraintViolation},
		{name: "other error", err: plain, want: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateError(tt.err), tt.want)
		})
	}

	assert.NoError(t, translateError(nil))
}

func TestIsConstraintViolation_OtherSQLState(t *testing.T) {
	// 40001 - serialization failure, не нарушение ограничений
	assert.False(t, isConstraintViolation(&pgconn.PgError{Code: "40001"}))
	assert.False(t, isConstraintViolation(&pq.Error{Code: "08006"}))
}
