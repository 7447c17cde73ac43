// Package config loads leavechat configuration and sets up logging.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values.
type Config struct {
	// Data files
	EmployeeFile    string `yaml:"employee_file"`
	ApplicationFile string `yaml:"application_file"`

	// Logging
	LogFile      string `yaml:"log_file"`
	LogLevelName string `yaml:"log_level"`
	LogLevel     slog.Level `yaml:"-"`
}

// Load reads configuration with the following precedence, lowest first:
// built-in defaults, an optional YAML config file, environment variables.
// The config file path is $LEAVECHAT_CONFIG, falling back to
// ~/.config/leavechat/config.yaml when that exists.
func Load() Config {
	cfg := Config{
		EmployeeFile:    "data/employees.csv",
		ApplicationFile: "data/applications.json",
		LogFile:         "/tmp/leavechat.log",
		LogLevelName:    "INFO",
	}

	if path := configFilePath(); path != "" {
		// A broken config file should not stop the CLI; defaults still apply.
		if err := loadFile(path, &cfg); err != nil {
			slog.Warn("failed to load config file", "file", path, "error", err)
		}
	}

	cfg.EmployeeFile = getEnv("LEAVECHAT_EMPLOYEE_FILE", cfg.EmployeeFile)
	cfg.ApplicationFile = getEnv("LEAVECHAT_APPLICATION_FILE", cfg.ApplicationFile)
	cfg.LogFile = getEnv("LEAVECHAT_LOG_FILE", cfg.LogFile)
	cfg.LogLevelName = getEnv("LEAVECHAT_LOG_LEVEL", cfg.LogLevelName)
	cfg.LogLevel = parseLogLevel(cfg.LogLevelName)

	return cfg
}

func configFilePath() string {
	if path := os.Getenv("LEAVECHAT_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".config", "leavechat", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
