package helper

import (
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// QuestionView представляет вопрос в формате ответа клиенту
type QuestionView struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// ConvertQuestion преобразует сущность вопроса в представление для клиента
func ConvertQuestion(q entity.Question) QuestionView {
	return QuestionView{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// ConvertQuestions преобразует список вопросов. Пустой список дает [] в JSON, а не null.
func ConvertQuestions(questions []entity.Question) []QuestionView {
	converted := make([]QuestionView, len(questions))
	for i, q := range questions {
		converted[i] = ConvertQuestion(q)
	}
	return converted
}

// ConvertCategories преобразует категории в отображение id -> type
func ConvertCategories(categories []entity.Category) map[uint]string {
	return entity.CategoryMap(categories)
}
