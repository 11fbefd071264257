package config

import "os"

// FromEnv overlays TODO_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("TODO_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("TODO_DATA_FILE"); v != "" {
		cfg.DataFile = v
	}
	if v := os.Getenv("TODO_REQUEST_LOG"); v != "" {
		cfg.RequestLog = v
	}
	if v := os.Getenv("TODO_WRITE_MODE"); v != "" {
		cfg.WriteMode = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
