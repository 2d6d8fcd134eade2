package database

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz-api/internal/config"
)

// Open подключается к хранилищу, выбранному в конфигурации, и готовит схему:
// для Postgres применяются SQL-миграции, для SQLite - AutoMigrate и начальные категории.
func Open(cfg config.DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := NewPostgresDB(cfg.PostgresConnectionString(), PoolConfig{
			MaxOpenConns: cfg.MaxOpenConns,
			MaxIdleConns: cfg.MaxIdleConns,
		}, log)
		if err != nil {
			return nil, err
		}
		if err := MigrateDB(db, cfg.MigrationsPath, log); err != nil {
			return nil, err
		}
		return db, nil

	case config.DriverSQLite:
		db, err := NewSQLiteDB(cfg.SQLitePath, log)
		if err != nil {
			return nil, err
		}
		if err := AutoMigrate(db); err != nil {
			return nil, err
		}
		if err := SeedCategories(db); err != nil {
			return nil, err
		}
		return db, nil

	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// Close закрывает пул соединений
func Close(db *gorm.DB) error {
	sqlDB, err := GetSQLDB(db)
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
