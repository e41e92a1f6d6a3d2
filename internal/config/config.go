package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port          string
	GinMode       string
	LogLevel      string
	CatalogSource string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	AutoMigrate   bool
	MigrationsDir string
	DefaultAmount string
	DefaultMethod string
}

// LoadEnv reads a .env file from the working directory when one exists.
// Variables already set in the environment win.
func LoadEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Msg("no .env file found")
			return
		}
		log.Warn().Err(err).Msg("failed to read .env file")
	}
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CatalogSource: strings.ToLower(getEnv("CATALOG_SOURCE", "static")),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "lf3m"),
		DBPassword:    getEnv("DB_PASSWORD", "lf3m_secret"),
		DBName:        getEnv("DB_NAME", "lf3m"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		AutoMigrate:   getEnv("AUTO_MIGRATE", "false") == "true",
		MigrationsDir: getEnv("MIGRATIONS_DIR", "file://migrations"),
		DefaultAmount: getEnv("DEFAULT_AMOUNT", "99.90"),
		DefaultMethod: getEnv("DEFAULT_METHOD", "pix"),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// Level falls back to info when LOG_LEVEL is not a zerolog level name.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}
	return level
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
