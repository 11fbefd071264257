package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("default http addr")
	}
	if cfg.WriteMode != WriteModeSerialized {
		t.Fatalf("default write mode")
	}
	if cfg.DataFile != "" || cfg.RequestLog != "" {
		t.Fatalf("file paths should default empty for later resolution")
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("default logging")
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "todo.json")
	data := []byte(`{"httpAddr":":9090","dataFile":"/srv/todos.json","writeMode":"unserialized"}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected :9090")
	}
	if cfg.DataFile != "/srv/todos.json" {
		t.Fatalf("expected data file override")
	}
	if cfg.WriteMode != WriteModeUnserialized {
		t.Fatalf("expected unserialized")
	}
	// Unset keys keep defaults.
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %q", cfg.LogLevel)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "todo.yaml")
	data := []byte("httpAddr: \":7070\"\nrequestLog: /var/log/todo/requests.log\nlogFormat: json\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":7070" {
		t.Fatalf("expected :7070, got %q", cfg.HTTPAddr)
	}
	if cfg.RequestLog != "/var/log/todo/requests.log" {
		t.Fatalf("expected request log override")
	}
	if cfg.LogFormat != "json" {
		t.Fatalf("expected json format")
	}
	if cfg.WriteMode != WriteModeSerialized {
		t.Fatalf("expected default write mode, got %q", cfg.WriteMode)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	os.Setenv("TODO_HTTP_ADDR", ":4000")
	os.Setenv("TODO_WRITE_MODE", "unserialized")
	os.Setenv("TODO_LOG_LEVEL", "debug")
	t.Cleanup(func() {
		os.Unsetenv("TODO_HTTP_ADDR")
		os.Unsetenv("TODO_WRITE_MODE")
		os.Unsetenv("TODO_LOG_LEVEL")
	})
	FromEnv(&cfg)
	if cfg.HTTPAddr != ":4000" {
		t.Fatalf("env override addr")
	}
	if cfg.WriteMode != WriteModeUnserialized {
		t.Fatalf("env override write mode")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env override log level")
	}
}

func TestValidateWriteMode(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	cfg.WriteMode = "parallel"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for unknown write mode")
	}
	cfg.WriteMode = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty write mode should validate: %v", err)
	}
}
