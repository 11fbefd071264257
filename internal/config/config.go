package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Write modes for the todos service. Serialized takes an exclusive lock
// around every load-mutate-save cycle; unserialized preserves the racy
// behavior of concurrent whole-file rewrites.
const (
	WriteModeSerialized   = "serialized"
	WriteModeUnserialized = "unserialized"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	HTTPAddr   string `json:"httpAddr" yaml:"httpAddr"`
	DataFile   string `json:"dataFile" yaml:"dataFile"`
	RequestLog string `json:"requestLog" yaml:"requestLog"`
	WriteMode  string `json:"writeMode" yaml:"writeMode"`
	LogLevel   string `json:"logLevel" yaml:"logLevel"`
	LogFormat  string `json:"logFormat" yaml:"logFormat"`
}

// Default returns built-in defaults. DataFile and RequestLog are left empty
// here; callers resolve them under DefaultDataDir when unset.
func Default() Config {
	return Config{
		HTTPAddr:  ":8080",
		WriteMode: WriteModeSerialized,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Validate checks invariants not expressible in the type system.
func (c Config) Validate() error {
	switch c.WriteMode {
	case "", WriteModeSerialized, WriteModeUnserialized:
	default:
		return fmt.Errorf("invalid writeMode %q (use %q or %q)", c.WriteMode, WriteModeSerialized, WriteModeUnserialized)
	}
	return nil
}
