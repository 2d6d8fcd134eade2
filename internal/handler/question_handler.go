package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
	"github.com/yourusername/trivia-quiz-api/internal/excel"
	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/handler/helper"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz-api/internal/pkg/pagination"
	"github.com/yourusername/trivia-quiz-api/internal/service"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	log             *logrus.Entry
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(questionService *service.QuestionService, log *logrus.Logger) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		log:             log.WithField("component", "question_handler"),
	}
}

// ListQuestions возвращает страницу вопросов
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := pagination.ParsePage(c.Query("page"))

	result, err := h.questionService.ListQuestions(c.Request.Context(), page)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionsPageResponse{
		Success:        true,
		Questions:      helper.ConvertQuestions(result.Questions),
		TotalQuestions: result.Total,
		Categories:     helper.ConvertCategories(result.Categories),
	})
}

// ListByCategory возвращает все вопросы категории
// GET /categories/:id/questions
func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint)

	result, err := h.questionService.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoryQuestionsResponse{
		Success:         true,
		Questions:       helper.ConvertQuestions(result.Questions),
		TotalQuestions:  len(result.Questions),
		CurrentCategory: result.Category.Type,
	})
}

// CreateQuestion создает вопрос и возвращает страницу всех вопросов
// POST /questions?page=N
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	page := pagination.ParsePage(c.Query("page"))
	result, err := h.questionService.Create(c.Request.Context(), service.CreateQuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: req.Category.Uint(),
		Difficulty: req.Difficulty.Int(),
	}, page)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateQuestionResponse{
		Success:        true,
		ID:             result.Question.ID,
		Question:       result.Question.Question,
		Questions:      helper.ConvertQuestions(result.Questions),
		TotalQuestions: result.Total,
	})
}

// SearchQuestions ищет вопросы по подстроке
// POST /questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	questions, err := h.questionService.Search(c.Request.Context(), req.SearchTerm)
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Success:        true,
		Questions:      helper.ConvertQuestions(questions),
		TotalQuestions: len(questions),
	})
}

// DeleteQuestion удаляет вопрос
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	if err := h.questionService.Delete(c.Request.Context(), questionID); err != nil {
		handleServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteQuestionResponse{
		Success: true,
		Deleted: questionID,
	})
}

// ExportQuestions выгружает все вопросы в CSV или Excel
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", excel.FormatCSV)
	if format != excel.FormatCSV && format != excel.FormatXLSX {
		helper.AbortWithError(c, http.StatusBadRequest,
			apperrors.FieldViolation{Field: "format", Rule: "oneof", Param: "csv xlsx"})
		return
	}

	questions, err := h.questionService.ExportQuestions(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.log, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case excel.FormatXLSX:
		h.exportXLSX(c, questions, filename)
	default:
		h.exportCSV(c, questions, filename)
	}
}

func (h *QuestionHandler) exportCSV(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	if err := excel.WriteCSV(c.Writer, questions); err != nil {
		// Заголовки уже отправлены, остается только залогировать
		h.log.WithError(err).Error("Не удалось выгрузить вопросы в CSV")
	}
}

func (h *QuestionHandler) exportXLSX(c *gin.Context, questions []entity.Question, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)

	if err := excel.WriteXLSX(c.Writer, questions); err != nil {
		h.log.WithError(err).Error("Не удалось выгрузить вопросы в Excel")
	}
}
