package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

// Store drivers understood by the store package.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	StoreDriver  string
	SQLitePath   string
	FilePath     string
	RedisURL     string
	StoreKey     string
	LogLevel     string
	LogFormat    string
	TickInterval time.Duration
}

// Load reads configuration from environment variables with defaults.
// A .env file in the working directory is loaded first if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		StoreDriver:  strings.ToLower(getEnv("QUIZ_STORE_DRIVER", DriverSQLite)),
		SQLitePath:   getEnv("QUIZ_SQLITE_PATH", "quizzes.db"),
		FilePath:     getEnv("QUIZ_FILE_PATH", "quizzes.json"),
		RedisURL:     getEnv("QUIZ_REDIS_URL", "redis://localhost:6379/0"),
		StoreKey:     getEnv("QUIZ_STORE_KEY", "quizzes"),
		LogLevel:     getEnv("LOG_LEVEL", "warn"),
		LogFormat:    getEnv("LOG_FORMAT", defaultLogFormat()),
		TickInterval: getEnvDuration("QUIZ_TICK_INTERVAL", time.Second),
	}
}

// StorePath is the location the selected driver persists to, empty for
// drivers without one.
func (c *Config) StorePath() string {
	switch c.StoreDriver {
	case DriverSQLite:
		return c.SQLitePath
	case DriverFile:
		return c.FilePath
	case DriverRedis:
		return c.RedisURL
	default:
		return ""
	}
}

// SetStorePath points the selected driver somewhere else.
func (c *Config) SetStorePath(path string) {
	switch c.StoreDriver {
	case DriverSQLite:
		c.SQLitePath = path
	case DriverFile:
		c.FilePath = path
	case DriverRedis:
		c.RedisURL = path
	}
}

func defaultLogFormat() string {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return "pretty"
	}
	return "json"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvDuration accepts Go durations ("500ms") or a bare number of seconds.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n := getEnvInt(key, 0); n > 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}
