package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// AllCategories - идентификатор категории "все категории" в режиме викторины
const AllCategories uint = 0

// QuizService выбирает вопросы для режима викторины
type QuizService struct {
	questionRepo repository.QuestionRepository
	log          *logrus.Entry
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository, log *logrus.Logger) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		log:          log.WithField("component", "quiz_service"),
	}
}

// NextQuestion возвращает случайный вопрос категории categoryID (0 - все категории),
// которого нет среди previousIDs.
//
// Если в категории нет ни одного вопроса, возвращается apperrors.ErrNotFound.
// Если все вопросы уже были показаны, возвращается nil без ошибки: раунд окончен.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID uint, previousIDs []uint) (*entity.Question, error) {
	total, err := s.questionRepo.CountByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to count questions of category %d: %w", categoryID, err)
	}
	if total == 0 {
		return nil, fmt.Errorf("category %d has no questions: %w", categoryID, apperrors.ErrNotFound)
	}

	question, err := s.questionRepo.GetRandomExcluding(ctx, categoryID, previousIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to pick question: %w", err)
	}

	if question == nil {
		s.log.WithFields(logrus.Fields{
			"category": categoryID,
			"seen":     len(previousIDs),
		}).Debug("Вопросы категории закончились")
		return nil, nil
	}
	return question, nil
}
