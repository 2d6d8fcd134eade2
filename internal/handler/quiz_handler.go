package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/handler/helper"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// QuizHandler обрабатывает запросы режима викторины
type QuizHandler struct {
	quizService *service.QuizService
	log         *logrus.Entry
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService, log *logrus.Logger) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		log:         log.WithField("component", "quiz_handler"),
	}
}

// NextQuestion возвращает случайный ранее не показанный вопрос категории.
// Когда вопросы закончились, question равен null.
// POST /quizzes
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	question, err := h.quizService.NextQuestion(c.Request.Context(), req.QuizCategory.ID.Uint(), req.PreviousQuestions)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}

	resp := dto.QuizResponse{Success: true}
	if question != nil {
		view := helper.ConvertQuestion(*question)
		resp.Question = &view
	}
	c.JSON(http.StatusOK, resp)
}
