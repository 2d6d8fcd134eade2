package database

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-quiz-api/internal/config"
	"github.com/yourusername/trivia-quiz-api/internal/domain/entity"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestOpen_SQLiteBootstrapsSchemaAndCategories(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}, quietLogger())
	require.NoError(t, err)
	defer Close(db)

	var categories []entity.Category
	require.NoError(t, db.Order("id").Find(&categories).Error)
	require.Len(t, categories, len(entity.DefaultCategories))
	assert.Equal(t, "Science", categories[0].Type)
	assert.Equal(t, "Sports", categories[5].Type)

	// Повторное заполнение не дублирует категории
	require.NoError(t, SeedCategories(db))
	var count int64
	require.NoError(t, db.Model(&entity.Category{}).Count(&count).Error)
	assert.Equal(t, int64(len(entity.DefaultCategories)), count)
}

func TestSQLite_CheckConstraintOnDifficulty(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}, quietLogger())
	require.NoError(t, err)
	defer Close(db)

	bad := entity.Question{Question: "q", Answer: "a", CategoryID: 1, Difficulty: 9}
	assert.Error(t, db.Create(&bad).Error, "Ограничение CHECK должно отклонить сложность 9")

	good := entity.Question{Question: "q", Answer: "a", CategoryID: 1, Difficulty: 3}
	assert.NoError(t, db.Create(&good).Error)
	assert.NotZero(t, good.ID)
}

func TestSQLite_UnicodeLower(t *testing.T) {
	db, err := Open(config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"}, quietLogger())
	require.NoError(t, err)
	defer Close(db)

	var builtin, unicode string
	require.NoError(t, db.Raw("SELECT LOWER(?)", "ВОЙНА War").Scan(&builtin).Error)
	require.NoError(t, db.Raw("SELECT "+SQLiteLowerFunc+"(?)", "ВОЙНА War").Scan(&unicode).Error)

	assert.Equal(t, "ВОЙНА war", builtin, "Встроенный LOWER меняет только ASCII")
	assert.Equal(t, "война war", unicode)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "oracle"}, quietLogger())
	assert.Error(t, err)
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, logger.Info, gormLogLevel(logrus.DebugLevel))
	assert.Equal(t, logger.Info, gormLogLevel(logrus.TraceLevel))
	assert.Equal(t, logger.Warn, gormLogLevel(logrus.InfoLevel))
	assert.Equal(t, logger.Warn, gormLogLevel(logrus.WarnLevel))
	assert.Equal(t, logger.Error, gormLogLevel(logrus.ErrorLevel))
	assert.Equal(t, logger.Silent, gormLogLevel(logrus.FatalLevel))
}
