package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/yourusername/trivia-quiz-api/internal/config"
	"github.com/yourusername/trivia-quiz-api/internal/excel"
	pgRepo "github.com/yourusername/trivia-quiz-api/internal/repository/postgres"
	"github.com/yourusername/trivia-quiz-api/internal/service"
	"github.com/yourusername/trivia-quiz-api/pkg/database"
	"github.com/yourusername/trivia-quiz-api/pkg/logger"
)

// Загрузка вопросов из CSV или Excel:
//
//	import -file questions.xlsx
func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	filePath := flag.String("file", "", "path to .csv or .xlsx file")
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, *filePath); err != nil {
		fmt.Fprintf(os.Stderr, "import: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, filePath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	categoryRepo := pgRepo.NewCategoryRepo(db)
	categories, err := categoryRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	questionService := service.NewQuestionService(pgRepo.NewQuestionRepo(db), categoryRepo, log)
	importer := excel.NewImporter(questionService, categories, log)

	result, err := importer.ImportFile(ctx, filePath)
	if err != nil {
		return err
	}

	fmt.Printf("Processed: %d\nCreated: %d\nSkipped: %d\n", result.Processed, result.Created, result.Skipped)
	for _, msg := range result.Errors {
		fmt.Println("  " + msg)
	}
	return nil
}
