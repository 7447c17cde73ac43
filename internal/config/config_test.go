package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LEAVECHAT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("LEAVECHAT_EMPLOYEE_FILE", "")
	t.Setenv("LEAVECHAT_APPLICATION_FILE", "")
	t.Setenv("LEAVECHAT_LOG_FILE", "")
	t.Setenv("LEAVECHAT_LOG_LEVEL", "")

	cfg := Load()

	if cfg.EmployeeFile != "data/employees.csv" {
		t.Errorf("EmployeeFile = %q, want default", cfg.EmployeeFile)
	}
	if cfg.ApplicationFile != "data/applications.json" {
		t.Errorf("ApplicationFile = %q, want default", cfg.ApplicationFile)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "employee_file: from-file.csv\nlog_level: DEBUG\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("LEAVECHAT_CONFIG", path)
	t.Setenv("LEAVECHAT_EMPLOYEE_FILE", "")
	t.Setenv("LEAVECHAT_APPLICATION_FILE", "from-env.json")
	t.Setenv("LEAVECHAT_LOG_FILE", "")
	t.Setenv("LEAVECHAT_LOG_LEVEL", "")

	cfg := Load()

	// File overrides defaults.
	if cfg.EmployeeFile != "from-file.csv" {
		t.Errorf("EmployeeFile = %q, want from-file.csv", cfg.EmployeeFile)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	// Env overrides the file.
	if cfg.ApplicationFile != "from-env.json" {
		t.Errorf("ApplicationFile = %q, want from-env.json", cfg.ApplicationFile)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warning", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("turn processed", "intent", "balance")

	if stderr.Len() == 0 {
		t.Error("expected text output on stderr writer")
	}

	// The file side must be structured JSON.
	var entry map[string]any
	if err := json.Unmarshal(file.Bytes(), &entry); err != nil {
		t.Fatalf("file output is not JSON: %v", err)
	}
	if entry["msg"] != "turn processed" || entry["intent"] != "balance" {
		t.Errorf("unexpected log entry: %v", entry)
	}
	if entry["app"] != "leavechat" {
		t.Errorf("app attr = %v, want leavechat", entry["app"])
	}
}
