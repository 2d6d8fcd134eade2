package database

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm/logger"
)

// slowQueryThreshold - запросы дольше этого порога логируются как медленные
const slowQueryThreshold = 200 * time.Millisecond

// NewGormLogger направляет логи GORM в logrus.
// Уровень SQL-логов выводится из уровня logrus: debug → все запросы.
func NewGormLogger(log *logrus.Logger) logger.Interface {
	if log == nil {
		return logger.Default.LogMode(logger.Silent)
	}
	return logger.New(log, logger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormLogLevel(log.GetLevel()),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func gormLogLevel(level logrus.Level) logger.LogLevel {
	switch {
	case level >= logrus.DebugLevel:
		return logger.Info
	case level >= logrus.WarnLevel:
		return logger.Warn
	case level >= logrus.ErrorLevel:
		return logger.Error
	default:
		return logger.Silent
	}
}
