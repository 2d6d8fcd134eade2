package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/trivia-quiz-api/internal/handler/helper"
	apperrors "github.com/yourusername/trivia-quiz-api/internal/pkg/errors"
)

// handleServiceError отправляет клиенту ответ, соответствующий типу ошибки сервиса
func handleServiceError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		helper.AbortWithError(c, http.StatusBadRequest, validationErr.Violations...)
	case errors.Is(err, apperrors.ErrValidation):
		helper.AbortWithError(c, http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotFound):
		helper.AbortWithError(c, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrUnprocessable):
		helper.AbortWithError(c, http.StatusUnprocessableEntity)
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("Внутренняя ошибка сервера")
		helper.AbortWithError(c, http.StatusInternalServerError)
	}
}

// abortWithBindingError отвечает 400 со списком нарушений для ошибки разбора тела запроса
func abortWithBindingError(c *gin.Context, err error) {
	helper.AbortWithError(c, http.StatusBadRequest, bindingViolations(err)...)
}
