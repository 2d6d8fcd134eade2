package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/trivia-quiz-api/internal/handler/helper"
	"github.com/yourusername/trivia-quiz-api/internal/middleware"
)

// Handlers - набор обработчиков, из которых собирается роутер
type Handlers struct {
	Category *CategoryHandler
	Question *QuestionHandler
	Quiz     *QuizHandler
	Health   *HealthHandler
}

// NewRouter настраивает маршруты API под префиксом prefix
func NewRouter(prefix string, h Handlers, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log),
		middleware.CORSForPrefix(prefix),
	)

	router.NoRoute(func(c *gin.Context) {
		helper.AbortWithError(c, http.StatusNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		helper.AbortWithError(c, http.StatusMethodNotAllowed)
	})

	router.GET("/health", h.Health.Health)

	api := router.Group(prefix)
	{
		// Категории
		categories := api.Group("/categories")
		{
			categories.GET("", h.Category.ListCategories)
			categories.GET("/:id/questions",
				middleware.ExtractUintParam("id", "categoryID"),
				h.Question.ListByCategory)
		}

		// Вопросы
		questions := api.Group("/questions")
		{
			questions.GET("", h.Question.ListQuestions)
			questions.POST("", h.Question.CreateQuestion)
			questions.POST("/search", h.Question.SearchQuestions)
			questions.GET("/export", h.Question.ExportQuestions)
			questions.DELETE("/:id",
				middleware.ExtractUintParam("id", "questionID"),
				h.Question.DeleteQuestion)
		}

		// Викторина
		api.POST("/quizzes", h.Quiz.NextQuestion)
	}

	return router
}
