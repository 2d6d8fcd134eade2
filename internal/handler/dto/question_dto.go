package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/trivia-quiz-api/internal/handler/helper"
)

// FlexInt принимает число как в виде JSON-числа, так и в виде строки ("3").
// Пустая строка и null дают 0.
type FlexInt int

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*f = 0
			return nil
		}
	} else {
		raw = string(data)
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*f = FlexInt(n)
	return nil
}

// Int возвращает значение как int
func (f FlexInt) Int() int {
	return int(f)
}

// Uint возвращает значение как uint; отрицательные значения дают 0
func (f FlexInt) Uint() uint {
	if f < 0 {
		return 0
	}
	return uint(f)
}

// CreateQuestionRequest - тело запроса на создание вопроса
type CreateQuestionRequest struct {
	Question   string  `json:"question" binding:"required"`
	Answer     string  `json:"answer" binding:"required"`
	Category   FlexInt `json:"category" binding:"required,min=1"`
	Difficulty FlexInt `json:"difficulty" binding:"required,min=1,max=5"`
}

// SearchRequest - тело запроса поиска
type SearchRequest struct {
	SearchTerm string `json:"searchTerm" binding:"required"`
}

// QuizCategory - категория раунда викторины, id 0 означает все категории
type QuizCategory struct {
	ID   FlexInt `json:"id" binding:"min=0"`
	Type string  `json:"type"`
}

// QuizRequest - тело запроса следующего вопроса викторины
type QuizRequest struct {
	PreviousQuestions []uint        `json:"previous_questions" binding:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}

// CategoriesResponse - ответ со всеми категориями
type CategoriesResponse struct {
	Success    bool            `json:"success"`
	Categories map[uint]string `json:"categories"`
}

// QuestionsPageResponse - страница вопросов
type QuestionsPageResponse struct {
	Success        bool                  `json:"success"`
	Questions      []helper.QuestionView `json:"questions"`
	TotalQuestions int64                 `json:"total_questions"`
	Categories     map[uint]string       `json:"categories"`
}

// SearchResponse - результат поиска
type SearchResponse struct {
	Success        bool                  `json:"success"`
	Questions      []helper.QuestionView `json:"questions"`
	TotalQuestions int                   `json:"total_questions"`
}

// CategoryQuestionsResponse - вопросы одной категории
type CategoryQuestionsResponse struct {
	Success         bool                  `json:"success"`
	Questions       []helper.QuestionView `json:"questions"`
	TotalQuestions  int                   `json:"total_questions"`
	CurrentCategory string                `json:"current_category"`
}

// CreateQuestionResponse - результат создания вопроса: id, текст и страница всех вопросов
type CreateQuestionResponse struct {
	Success        bool                  `json:"success"`
	ID             uint                  `json:"id"`
	Question       string                `json:"question"`
	Questions      []helper.QuestionView `json:"questions"`
	TotalQuestions int64                 `json:"total_questions"`
}

// DeleteQuestionResponse - результат удаления вопроса
type DeleteQuestionResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}

// QuizResponse - следующий вопрос викторины; question равен null, когда раунд окончен
type QuizResponse struct {
	Success  bool                 `json:"success"`
	Question *helper.QuestionView `json:"question"`
}

// HealthResponse - состояние сервиса
type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}
