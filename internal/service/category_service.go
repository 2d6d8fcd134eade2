package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	log          *logrus.Entry
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository, log *logrus.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		log:          log.WithField("component", "category_service"),
	}
}

// ListCategories возвращает все категории. Пустой список - apperrors.ErrNotFound.
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories: %w", apperrors.ErrNotFound)
	}
	return categories, nil
}
