package repository

import (
	"context"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	GetByID(ctx context.Context, id uint) (*entity.Question, error)
	Delete(ctx context.Context, id uint) error

	// Выборки, упорядоченные по id
	List(ctx context.Context, offset, limit int) ([]entity.Question, error)
	ListAll(ctx context.Context) ([]entity.Question, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error)
	Count(ctx context.Context) (int64, error)

	// Search ищет вопросы по подстроке без учета регистра
	Search(ctx context.Context, term string) ([]entity.Question, error)

	// Методы для режима викторины. categoryID == 0 означает все категории.
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	GetRandomExcluding(ctx context.Context, categoryID uint, excludeIDs []uint) (*entity.Question, error)
}
