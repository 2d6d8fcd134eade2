package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Профили окружения (аналог Dev/Prod/Test конфигураций)
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Драйверы хранилища
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config хранит все настройки приложения
type Config struct {
	Env      string         `mapstructure:"env"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	API      APIConfig      `mapstructure:"api"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

// DatabaseConfig содержит настройки подключения к хранилищу
type DatabaseConfig struct {
	// Driver: "postgres" (по умолчанию) или "sqlite" (локальная разработка, тесты)
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`

	// SQLitePath: путь к файлу SQLite или ":memory:"
	SQLitePath string `mapstructure:"sqlite_path"`

	// MigrationsPath: каталог с SQL-миграциями для golang-migrate
	MigrationsPath string `mapstructure:"migrations_path"`

	MaxOpenConns int `mapstructure:"max_open_conns"`
	MaxIdleConns int `mapstructure:"max_idle_conns"`
}

// LogConfig содержит настройки логирования
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// APIConfig содержит настройки HTTP API
type APIConfig struct {
	// Prefix: общий версионированный префикс маршрутов
	Prefix string `mapstructure:"prefix"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// PostgresURL формирует URL подключения (для lib/pq и golang-migrate)
func (d *DatabaseConfig) PostgresURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// IsProduction сообщает, запущено ли приложение в production-профиле
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load загружает конфигурацию из файла и переменных окружения
func Load(configPath string) (*Config, error) {
	vip := viper.New() // Новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Значения по умолчанию
	vip.SetDefault("env", EnvDevelopment)
	vip.SetDefault("server.port", "5000")
	vip.SetDefault("server.read_timeout", 10)
	vip.SetDefault("server.write_timeout", 10)
	vip.SetDefault("database.host", "localhost")
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("database.sqlite_path", "trivia.db")
	vip.SetDefault("database.migrations_path", "migrations")
	vip.SetDefault("database.max_open_conns", 25)
	vip.SetDefault("database.max_idle_conns", 10)
	vip.SetDefault("log.level", "info")
	vip.SetDefault("log.format", "text")
	vip.SetDefault("api.prefix", "/api/v1.0")

	// 2. Явная привязка переменных окружения
	vip.BindEnv("env", "APP_ENV")
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("database.driver", "DATABASE_DRIVER")
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	vip.BindEnv("database.sqlite_path", "DATABASE_SQLITE_PATH")
	vip.BindEnv("database.migrations_path", "DATABASE_MIGRATIONS_PATH")
	vip.BindEnv("log.level", "LOG_LEVEL")
	vip.BindEnv("log.format", "LOG_FORMAT")
	vip.BindEnv("api.prefix", "API_PREFIX")

	// 3. Файл конфигурации необязателен: все можно задать через окружение
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || os.IsNotExist(err) {
				logrus.Infof("Файл конфигурации '%s' не найден, используются переменные окружения/умолчания", configPath)
			} else {
				logrus.Warnf("Не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyProfile()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"env":       cfg.Env,
		"driver":    cfg.Database.Driver,
		"db_host":   cfg.Database.Host,
		"db_name":   cfg.Database.DBName,
		"port":      cfg.Server.Port,
		"api":       cfg.API.Prefix,
		"log_level": cfg.Log.Level,
	}).Debug("Конфигурация загружена")

	return &cfg, nil
}

// applyProfile дополняет настройки в зависимости от профиля
func (c *Config) applyProfile() {
	c.Env = strings.ToLower(c.Env)
	c.Database.Driver = strings.ToLower(c.Database.Driver)

	if c.Database.Driver == "" {
		if c.Env == EnvTesting {
			c.Database.Driver = DriverSQLite
			c.Database.SQLitePath = ":memory:"
		} else {
			c.Database.Driver = DriverPostgres
		}
	}

	if c.Env == EnvProduction {
		c.Log.Format = "json"
	}
	if !strings.HasPrefix(c.API.Prefix, "/") {
		c.API.Prefix = "/" + c.API.Prefix
	}
	c.API.Prefix = strings.TrimRight(c.API.Prefix, "/")
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDevelopment, EnvProduction, EnvTesting:
	default:
		return fmt.Errorf("unknown environment %q (expected development, production or testing)", c.Env)
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
			return fmt.Errorf("database configuration (host, dbname, user) is incomplete (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
		}
		if c.IsProduction() && c.Database.Password == "" {
			return fmt.Errorf("database password is required in production mode (check DATABASE_PASSWORD env var)")
		}
	case DriverSQLite:
		if c.IsProduction() {
			return fmt.Errorf("sqlite driver is not allowed in production mode")
		}
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("sqlite path is required (check DATABASE_SQLITE_PATH env var)")
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("server port is required (check SERVER_PORT env var)")
	}
	return nil
}
