package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

// SQLiteDriverName - драйвер database/sql с зарегистрированной функцией SQLiteLowerFunc
const SQLiteDriverName = "sqlite3_trivia"

// SQLiteLowerFunc - LOWER с учетом Unicode. Встроенный LOWER в SQLite
// переводит в нижний регистр только ASCII.
const SQLiteLowerFunc = "unicode_lower"

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(SQLiteLowerFunc, strings.ToLower, true)
		},
	})
}

// NewSQLiteDB открывает базу SQLite (файл или ":memory:").
// Используется для локальной разработки и тестов.
func NewSQLiteDB(path string, log *logrus.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", path)
	if path == ":memory:" {
		dsn = "file::memory:?_foreign_keys=on"
	}

	db, err := gorm.Open(sqlite.New(sqlite.Config{DriverName: SQLiteDriverName, DSN: dsn}), &gorm.Config{
		Logger:         NewGormLogger(log),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	// SQLite не поддерживает несколько писателей; для ":memory:" каждое
	// новое соединение получило бы пустую базу
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}

// AutoMigrate создает таблицы по описанию сущностей (только для SQLite,
// в Postgres схема управляется SQL-миграциями)
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.Category{}, &entity.Question{}); err != nil {
		return fmt.Errorf("failed to auto-migrate schema: %w", err)
	}
	return nil
}

// SeedCategories заполняет таблицу категорий, если она пуста
func SeedCategories(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := make([]entity.Category, len(entity.DefaultCategories))
	copy(categories, entity.DefaultCategories)
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	return nil
}
