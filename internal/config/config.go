package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	LogLevel    slog.Level
	LogFile     string
	DataDir     string
	Scenario    string
	Seed        int64
	TextWidth   int
}

// Load reads configuration from the environment. Values from a .env file in
// the working directory are used for variables that are not already set.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "warn")),
		LogFile:     getEnv("LOG_FILE", ""),
		DataDir:     getEnv("DATA_DIR", "./data"),
		Scenario:    getEnv("SCENARIO", "andre_adventure.yaml"),
		Seed:        getEnvInt64("SEED", 0),
		TextWidth:   int(getEnvInt64("TEXT_WIDTH", 0)),
	}
}

// ScenarioDir is where scenario files live.
func (c *Config) ScenarioDir() string {
	return filepath.Join(c.DataDir, "scenarios")
}

// ScenarioPath resolves a scenario name. Names containing a path separator
// are used as given; bare file names are looked up in ScenarioDir.
func (c *Config) ScenarioPath(name string) string {
	if name == "" {
		name = c.Scenario
	}
	if strings.ContainsRune(name, os.PathSeparator) || strings.Contains(name, "/") {
		return name
	}
	return filepath.Join(c.ScenarioDir(), name)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		slog.Warn("Ignoring invalid integer setting", "key", key, "value", value)
		return defaultValue
	}
	return n
}
