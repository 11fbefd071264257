package log

import (
	"fmt"
	stdlog "log"
	"strings"
)

// Config declares a logger in terms of plain strings, as carried by the
// service configuration and environment.
type Config struct {
	// Level is one of debug|info|warn|error. Empty means info.
	Level string `json:"level" yaml:"level"`
	// Format is one of text|json. Empty means text.
	Format string `json:"format" yaml:"format"`
}

// ParseLevel parses a level name (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	case "fatal":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// ApplyConfig builds a console logger from cfg. A nil cfg yields the
// defaults (info, text).
func ApplyConfig(cfg *Config) (Logger, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	level := InfoLevel
	if cfg.Level != "" {
		parsed, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	var formatter Formatter
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		formatter = &TextFormatter{}
	case "json":
		formatter = &JSONFormatter{}
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	return NewLogger(
		WithLevel(level),
		WithFormatter(formatter),
		WithOutput(NewConsoleOutput()),
	), nil
}

// RedirectStdLog routes the standard library's global logger through the
// given logger at InfoLevel, so dependencies using plain log.Printf share
// the process format.
func RedirectStdLog(logger Logger) {
	stdlog.SetFlags(0)
	stdlog.SetOutput(stdlogWriter{logger: logger, level: InfoLevel})
}

// ToStdLogger returns a *log.Logger that forwards to logger at the given
// level. Useful for http.Server.ErrorLog and similar hooks.
func ToStdLogger(logger Logger, level Level) *stdlog.Logger {
	return stdlog.New(stdlogWriter{logger: logger, level: level}, "", 0)
}

type stdlogWriter struct {
	logger Logger
	level  Level
}

func (w stdlogWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	switch w.level {
	case DebugLevel:
		w.logger.Debug(msg)
	case WarnLevel:
		w.logger.Warn(msg)
	case ErrorLevel, FatalLevel:
		w.logger.Error(msg)
	default:
		w.logger.Info(msg)
	}
	return len(p), nil
}
