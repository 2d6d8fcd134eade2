package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// ErrorResponse - единый формат ответа об ошибке
type ErrorResponse struct {
	Success bool                       `json:"success"`
	Error   int                        `json:"error"`
	Message string                     `json:"message"`
	Errors  []apperrors.FieldViolation `json:"errors,omitempty"`
}

// statusMessages - тексты сообщений для кодов ошибок
var statusMessages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusNotFound:            "not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
	http.StatusServiceUnavailable:  "service unavailable",
}

// StatusMessage возвращает текст сообщения для кода ошибки
func StatusMessage(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}

// NewErrorResponse создает ответ об ошибке для кода status
func NewErrorResponse(status int, violations ...apperrors.FieldViolation) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   status,
		Message: StatusMessage(status),
		Errors:  violations,
	}
}

// AbortWithError прерывает обработку запроса и отправляет ответ об ошибке
func AbortWithError(c *gin.Context, status int, violations ...apperrors.FieldViolation) {
	c.AbortWithStatusJSON(status, NewErrorResponse(status, violations...))
}
