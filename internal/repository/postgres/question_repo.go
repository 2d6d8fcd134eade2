package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/pkg/database"
)

// likeEscaper экранирует спецсимволы LIKE, чтобы поисковая строка совпадала буквально
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос. При ошибке транзакция откатывается.
func (r *QuestionRepo) Create(ctx context.Context, question *entity.Question) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
	return translateError(err)
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).First(&question, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &question, nil
}

// Delete удаляет вопрос. Если строка уже удалена, возвращает apperrors.ErrNotFound.
func (r *QuestionRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&entity.Question{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
	return translateError(err)
}

// List возвращает страницу вопросов, упорядоченных по id
func (r *QuestionRepo) List(ctx context.Context, offset, limit int) ([]entity.Question, error) {
	questions := make([]entity.Question, 0, limit)
	err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListAll возвращает все вопросы, упорядоченные по id
func (r *QuestionRepo) ListAll(ctx context.Context) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// ListByCategory возвращает все вопросы категории
func (r *QuestionRepo) ListByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).Where("category = ?", categoryID).Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// Count возвращает общее количество вопросов
func (r *QuestionRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Question{}).Count(&count).Error
	return count, err
}

// Search ищет вопросы, текст которых содержит term (без учета регистра, включая не-ASCII).
// В Postgres - ILIKE; в SQLite обе стороны приводятся к нижнему регистру
// функцией database.SQLiteLowerFunc.
func (r *QuestionRepo) Search(ctx context.Context, term string) ([]entity.Question, error) {
	query := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "sqlite" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		query = query.Where(database.SQLiteLowerFunc+`(question) LIKE ? ESCAPE '\'`, pattern)
	} else {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		query = query.Where(`question ILIKE ? ESCAPE '\'`, pattern)
	}

	var questions []entity.Question
	err := query.Order("id").Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// CountByCategory возвращает количество вопросов категории (0 - все категории)
func (r *QuestionRepo) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.byCategory(ctx, categoryID).Model(&entity.Question{}).Count(&count).Error
	return count, err
}

// GetRandomExcluding возвращает случайный вопрос категории, не входящий в excludeIDs.
// Если подходящих вопросов нет, возвращает nil, nil.
func (r *QuestionRepo) GetRandomExcluding(ctx context.Context, categoryID uint, excludeIDs []uint) (*entity.Question, error) {
	var question entity.Question
	query := r.byCategory(ctx, categoryID)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	err := query.Order("RANDOM()").Take(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &question, nil
}

// byCategory строит запрос с фильтром по категории (0 - без фильтра)
func (r *QuestionRepo) byCategory(ctx context.Context, categoryID uint) *gorm.DB {
	query := r.db.WithContext(ctx)
	if categoryID != 0 {
		query = query.Where("category = ?", categoryID)
	}
	return query
}
