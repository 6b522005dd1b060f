package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Удаленный REST API, единственный источник данных
	APIBaseURL string `env:"API_BASE_URL,required,notEmpty"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Sessions Config
	SessionTTL      time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL" envDefault:"10m"`

	// Страницы сессии в памяти живут, пока ими пользуются
	WorkspaceIdleTTL       time.Duration `env:"WORKSPACE_IDLE_TTL" envDefault:"30m"`
	WorkspaceSweepInterval time.Duration `env:"WORKSPACE_SWEEP_INTERVAL" envDefault:"1m"`

	PageSize int `env:"PAGE_SIZE" envDefault:"10"`

	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}
	return Parse()
}

// Parse читает конфигурацию только из окружения
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("PAGE_SIZE must be positive, got %d", cfg.PageSize)
	}
	if cfg.WorkspaceSweepInterval <= 0 {
		return nil, fmt.Errorf("WORKSPACE_SWEEP_INTERVAL must be positive, got %s", cfg.WorkspaceSweepInterval)
	}

	return cfg, nil
}
