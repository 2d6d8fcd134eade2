package service

import (
	"strconv"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// CreateQuestionInput - данные для создания вопроса
type CreateQuestionInput struct {
	Question   string
	Answer     string
	CategoryID uint
	Difficulty int
}

// Validate проверяет входные данные и возвращает все нарушения сразу
func (in CreateQuestionInput) Validate() error {
	var violations []apperrors.FieldViolation

	if in.Question == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "question", Rule: "required"})
	}
	if in.Answer == "" {
		violations = append(violations, apperrors.FieldViolation{Field: "answer", Rule: "required"})
	}
	if in.CategoryID == 0 {
		violations = append(violations, apperrors.FieldViolation{Field: "category", Rule: "required"})
	}
	switch {
	case in.Difficulty == 0:
		violations = append(violations, apperrors.FieldViolation{Field: "difficulty", Rule: "required"})
	case entity.IsValidDifficulty(in.Difficulty):
	case in.Difficulty < entity.MinDifficulty:
		violations = append(violations, apperrors.FieldViolation{Field: "difficulty", Rule: "min", Param: strconv.Itoa(entity.MinDifficulty)})
	default:
		violations = append(violations, apperrors.FieldViolation{Field: "difficulty", Rule: "max", Param: strconv.Itoa(entity.MaxDifficulty)})
	}

	if len(violations) > 0 {
		return apperrors.NewValidationError(violations...)
	}
	return nil
}
