package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/trivia-quiz-api/internal/handler/dto"
	"github.com/yourusername/trivia-quiz-api/internal/handler/helper"
)

const healthCheckTimeout = 2 * time.Second

// Pinger проверяет доступность хранилища; *sql.DB удовлетворяет этому интерфейсу
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler отвечает на проверки состояния сервиса
type HealthHandler struct {
	db  Pinger
	log *logrus.Entry
}

// NewHealthHandler создает обработчик проверки состояния
func NewHealthHandler(db Pinger, log *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log.WithField("component", "health_handler"),
	}
}

// Health проверяет подключение к базе данных
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.log.WithError(err).Warn("База данных недоступна")
		helper.AbortWithError(c, http.StatusServiceUnavailable)
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Success: true, Status: "ok"})
}
