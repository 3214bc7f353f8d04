package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	AppName           string        `env:"APP_NAME" env-default:"todoboard"`
	AppVersion        string        `env:"APP_VERSION" env-default:"dev"`
	AppPort           string        `env:"APP_PORT" env-default:"8000"`
	LogLevel          string        `env:"LOG_LEVEL" env-default:"info"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
	TranslationFolder string        `env:"TRANSLATION_FOLDER" env-default:"pkg/translator/translation"`
	TrustedProxiesRaw string        `env:"TRUSTED_PROXIES"`
	CORSOriginsRaw    string        `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`

	DbDriver          string        `env:"DB_DRIVER" env-default:"postgres"`
	DbHost            string        `env:"DB_HOST" env-default:"localhost"`
	DbPort            string        `env:"DB_PORT"`
	DbUser            string        `env:"DB_USER" env-default:"todoboard"`
	DbPassword        string        `env:"DB_PASSWORD" env-default:"todoboard"`
	DbName            string        `env:"DB_NAME" env-default:"todoboard"`
	DbSSLMode         string        `env:"DB_SSLMODE" env-default:"disable"`
	DbParams          string        `env:"DB_PARAMS"`
	DbMaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	DbMaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	DbConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"1h"`

	TrustedProxies []string `env:"-"`
	CORSOrigins    []string `env:"-"`
}

// BoardConfig configures the terminal board client.
type BoardConfig struct {
	APIURL         string        `env:"BOARD_API_URL" env-default:"http://localhost:8000"`
	RequestTimeout time.Duration `env:"BOARD_REQUEST_TIMEOUT" env-default:"10s"`
	LogFile        string        `env:"BOARD_LOG_FILE" env-default:"board.log"`
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	cfg.TrustedProxies = splitList(cfg.TrustedProxiesRaw)
	cfg.CORSOrigins = splitList(cfg.CORSOriginsRaw)
	if cfg.DbPort == "" {
		cfg.DbPort = defaultPort(cfg.DbDriver)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func LoadBoardConfig() (*BoardConfig, error) {
	_ = godotenv.Load(".env")

	var cfg BoardConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if strings.TrimSpace(cfg.APIURL) == "" {
		return nil, errors.New("config: BOARD_API_URL is empty")
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	switch c.DbDriver {
	case DriverPostgres, DriverMySQL:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMySQL, c.DbDriver))
	}

	switch c.DbSSLMode {
	case "disable", "require", "verify-full", "prefer":
	default:
		errs = append(errs, fmt.Errorf("DB_SSLMODE %q is not supported", c.DbSSLMode))
	}

	if c.AppPort == "" {
		errs = append(errs, errors.New("APP_PORT is empty"))
	}
	if c.DbMaxOpenConns < 0 || c.DbMaxIdleConns < 0 {
		errs = append(errs, errors.New("DB pool sizes must not be negative"))
	}

	return errors.Join(errs...)
}

func defaultPort(driver string) string {
	if driver == DriverMySQL {
		return "3306"
	}
	return "5432"
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
