package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/pagination"
)

// QuestionPage - страница вопросов вместе с общим количеством
type QuestionPage struct {
	Questions  []entity.Question
	Total      int64
	Categories []entity.Category
}

// CategoryQuestions - все вопросы одной категории
type CategoryQuestions struct {
	Category  entity.Category
	Questions []entity.Question
}

// CreateResult - результат создания вопроса
type CreateResult struct {
	Question  entity.Question
	Questions []entity.Question // страница всех вопросов после вставки
	Total     int64
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	log          *logrus.Entry
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	log *logrus.Logger,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		log:          log.WithField("component", "question_service"),
	}
}

// ListQuestions возвращает страницу вопросов (по id), общее количество и все категории.
// Пустая страница - apperrors.ErrNotFound.
func (s *QuestionService) ListQuestions(ctx context.Context, page int) (*QuestionPage, error) {
	total, err := s.questionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	if !pagination.InRange(page, total) {
		return nil, fmt.Errorf("page %d of %d questions: %w", page, total, apperrors.ErrNotFound)
	}

	questions, err := s.questionRepo.List(ctx, pagination.Offset(page), pagination.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	if len(questions) == 0 {
		// Вопросы могли удалить между подсчетом и выборкой
		return nil, fmt.Errorf("page %d is empty: %w", page, apperrors.ErrNotFound)
	}

	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &QuestionPage{
		Questions:  questions,
		Total:      total,
		Categories: categories,
	}, nil
}

// ListByCategory возвращает все вопросы категории.
// Неизвестная категория или категория без вопросов - apperrors.ErrNotFound.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID uint) (*CategoryQuestions, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("category %d: %w", categoryID, err)
	}

	questions, err := s.questionRepo.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", categoryID, err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("category %d has no questions: %w", categoryID, apperrors.ErrNotFound)
	}

	return &CategoryQuestions{Category: *category, Questions: questions}, nil
}

// Search ищет вопросы по подстроке без учета регистра.
// Пустой поисковый запрос - ошибка валидации (строка из пробелов пустой не считается), отсутствие совпадений - apperrors.ErrNotFound.
func (s *QuestionService) Search(ctx context.Context, term string) ([]entity.Question, error) {
	if term == "" {
		return nil, apperrors.NewValidationError(apperrors.FieldViolation{Field: "searchTerm", Rule: "required"})
	}

	questions, err := s.questionRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions match %q: %w", term, apperrors.ErrNotFound)
	}
	return questions, nil
}

// Create создает вопрос и возвращает страницу page всех вопросов после вставки.
// Ошибки хранилища (в т.ч. нарушение ограничений) и несуществующая категория
// возвращаются как apperrors.ErrUnprocessable.
func (s *QuestionService) Create(ctx context.Context, in CreateQuestionInput, page int) (*CreateResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.Exists(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check category %d: %w", in.CategoryID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: category %d does not exist", apperrors.ErrUnprocessable, in.CategoryID)
	}

	question := entity.Question{
		Question:   in.Question,
		Answer:     in.Answer,
		CategoryID: in.CategoryID,
		Difficulty: in.Difficulty,
	}
	if err := s.questionRepo.Create(ctx, &question); err != nil {
		s.log.WithError(err).WithField("category", in.CategoryID).Warn("Не удалось сохранить вопрос")
		if errors.Is(err, repository.ErrConstraintViolation) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUnprocessable, err)
		}
		return nil, fmt.Errorf("%w: failed to create question: %v", apperrors.ErrUnprocessable, err)
	}

	s.log.WithField("question_id", question.ID).Info("Вопрос создан")

	total, err := s.questionRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}

	questions := []entity.Question{}
	if pagination.InRange(page, total) {
		questions, err = s.questionRepo.List(ctx, pagination.Offset(page), pagination.PageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list questions: %w", err)
		}
	}

	return &CreateResult{Question: question, Questions: questions, Total: total}, nil
}

// Delete удаляет вопрос. Отсутствующий вопрос - apperrors.ErrNotFound,
// ошибка хранилища - apperrors.ErrUnprocessable.
func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	if _, err := s.questionRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("question %d: %w", id, err)
	}

	if err := s.questionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("question %d: %w", id, err)
		}
		s.log.WithError(err).WithField("question_id", id).Warn("Не удалось удалить вопрос")
		return fmt.Errorf("%w: failed to delete question %d: %v", apperrors.ErrUnprocessable, id, err)
	}

	s.log.WithField("question_id", id).Info("Вопрос удален")
	return nil
}

// ExportQuestions возвращает все вопросы для выгрузки. Пустая база - apperrors.ErrNotFound.
func (s *QuestionService) ExportQuestions(ctx context.Context) ([]entity.Question, error) {
	questions, err := s.questionRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions to export: %w", apperrors.ErrNotFound)
	}
	return questions, nil
}
