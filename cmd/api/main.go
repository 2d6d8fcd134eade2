package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/trivia-quiz-api/internal/config"
	"github.com/yourusername/trivia-quiz-api/internal/handler"
	pgRepo "github.com/yourusername/trivia-quiz-api/internal/repository/postgres"
	"github.com/yourusername/trivia-quiz-api/internal/service"
	"github.com/yourusername/trivia-quiz-api/pkg/database"
	"github.com/yourusername/trivia-quiz-api/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "trivia-quiz-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	log.WithFields(logrus.Fields{
		"env":    cfg.Env,
		"driver": cfg.Database.Driver,
		"config": configPath,
	}).Info("Конфигурация загружена")

	// Подключаемся к хранилищу и готовим схему
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("Ошибка при закрытии подключения к БД")
		}
	}()

	sqlDB, err := database.GetSQLDB(db)
	if err != nil {
		return err
	}

	// Репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	// Сервисы
	categoryService := service.NewCategoryService(categoryRepo, log)
	questionService := service.NewQuestionService(questionRepo, categoryRepo, log)
	quizService := service.NewQuizService(questionRepo, log)

	// Роутер
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(cfg.API.Prefix, handler.Handlers{
		Category: handler.NewCategoryHandler(categoryService, log),
		Question: handler.NewQuestionHandler(questionService, log),
		Quiz:     handler.NewQuizHandler(quizService, log),
		Health:   handler.NewHealthHandler(sqlDB, log),
	}, log)

	if cfg.IsProduction() {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.WithError(err).Warn("Не удалось настроить доверенные прокси")
		}
	} else if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		log.WithError(err).Warn("Не удалось настроить доверенные прокси")
	}

	// HTTP сервер с тайм-аутами
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Server.Port).Info("Запуск HTTP сервера")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("Остановка сервера...")
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Сервер остановлен")
	return nil
}
