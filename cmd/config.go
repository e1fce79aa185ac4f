package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string `validate:"required,numeric"`

	DBHost     string `validate:"required"`
	DBPort     string `validate:"required,numeric"`
	DBUser     string `validate:"required"`
	DBPassword string
	DBName     string `validate:"required"`
	DBSslMode  string `validate:"required,oneof=disable allow prefer require verify-ca verify-full"`

	RedisAddr     string `validate:"required,hostname_port"`
	RedisPassword string
	RedisDB       int `validate:"min=0,max=15"`

	// RabbitMQURL is optional; without it events are delivered in-process.
	RabbitMQURL string `validate:"omitempty,url"`

	SessionSecret string        `validate:"required,min=32"`
	SessionTTL    time.Duration `validate:"min=1m"`
	SecureCookie  bool
	BcryptCost    int `validate:"min=4,max=31"`

	LogLevel string `validate:"oneof=debug info warn error"`
	Env      string `validate:"oneof=development production test"`
}

// DSN is the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// LoadConfig reads the environment, after loading .env when one exists.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ConfigFromEnv(os.Getenv)
}

// ConfigFromEnv builds and validates a Config from getenv.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	var errs []error
	intVar := func(key string, fallback int) int {
		raw := env(key, "")
		if raw == "" {
			return fallback
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
		return v
	}

	config := Config{
		HTTPPort:      env("HTTP_PORT", "8080"),
		DBHost:        env("DB_HOST", "localhost"),
		DBPort:        env("DB_PORT", "5432"),
		DBUser:        env("DB_USER", ""),
		DBPassword:    getenv("DB_PASSWORD"),
		DBName:        env("DB_NAME", ""),
		DBSslMode:     env("DB_SSLMODE", "disable"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		RedisDB:       intVar("REDIS_DB", 0),
		RabbitMQURL:   env("RABBITMQ_URL", ""),
		SessionSecret: getenv("SESSION_SECRET"),
		BcryptCost:    intVar("BCRYPT_COST", 10),
		LogLevel:      strings.ToLower(env("LOG_LEVEL", "info")),
		Env:           env("APP_ENV", "production"),
	}

	ttl, err := time.ParseDuration(env("SESSION_TTL", "12h"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SESSION_TTL: %w", err))
	}
	config.SessionTTL = ttl

	secure, err := strconv.ParseBool(env("SECURE_COOKIE", "false"))
	if err != nil {
		errs = append(errs, fmt.Errorf("SECURE_COOKIE: %w", err))
	}
	config.SecureCookie = secure

	if err = errors.Join(errs...); err != nil {
		return Config{}, err
	}

	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}
