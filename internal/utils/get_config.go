package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// HTTP
	AppPort          string `yaml:"APP_PORT"`
	RateLimitMax     int    `yaml:"RATE_LIMIT_MAX"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`

	// Database configuration
	DatabaseURL    string `yaml:"DATABASE_URL"`
	DBUser         string `yaml:"DB_USER"`
	DBName         string `yaml:"DB_NAME"`
	DBPassword     string `yaml:"DB_PASSWORD"`
	DBPort         string `yaml:"DB_PORT"`
	DBHost         string `yaml:"DB_HOST"`
	DBSSLMode      string `yaml:"DB_SSLMODE"`
	DBMaxOpenConns int    `yaml:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int    `yaml:"DB_MAX_IDLE_CONNS"`

	// Logging
	LogLevel string `yaml:"LOG_LEVEL"`
	LogFile  string `yaml:"LOG_FILE"`
}

var config = DefaultConfig()

func DefaultConfig() Config {
	return Config{
		AppPort:          "8000",
		RateLimitMax:     0,
		CORSAllowOrigins: "*",
		DBHost:           "localhost",
		DBPort:           "5432",
		DBUser:           "postgres",
		DBName:           "recipes",
		DBSSLMode:        "disable",
		DBMaxOpenConns:   25,
		DBMaxIdleConns:   10,
		LogLevel:         "info",
	}
}

// LoadConfig reads .env (if present), then the yaml file (if present), then
// lets environment variables override every key. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := DefaultConfig()
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	config = cfg
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"APP_PORT":           &cfg.AppPort,
		"CORS_ALLOW_ORIGINS": &cfg.CORSAllowOrigins,
		"DATABASE_URL":       &cfg.DatabaseURL,
		"DB_USER":            &cfg.DBUser,
		"DB_NAME":            &cfg.DBName,
		"DB_PASSWORD":        &cfg.DBPassword,
		"DB_PORT":            &cfg.DBPort,
		"DB_HOST":            &cfg.DBHost,
		"DB_SSLMODE":         &cfg.DBSSLMode,
		"LOG_LEVEL":          &cfg.LogLevel,
		"LOG_FILE":           &cfg.LogFile,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"RATE_LIMIT_MAX":    &cfg.RateLimitMax,
		"DB_MAX_OPEN_CONNS": &cfg.DBMaxOpenConns,
		"DB_MAX_IDLE_CONNS": &cfg.DBMaxIdleConns,
	}
	for key, dst := range ints {
		v, ok := os.LookupEnv(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("env %s: %w", key, err)
		}
		*dst = n
	}
	return nil
}

// DSN returns DATABASE_URL when set, otherwise a key/value DSN built from the DB_* keys.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "CORS_ALLOW_ORIGINS":
		return config.CORSAllowOrigins
	case "DATABASE_URL":
		return config.DatabaseURL
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_SSLMODE":
		return config.DBSSLMode
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_FILE":
		return config.LogFile
	default:
		return ""
	}
}
