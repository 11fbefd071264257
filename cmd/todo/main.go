package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	clientcmd "github.com/rzbill/todo/internal/cmd/client"
	serverrun "github.com/rzbill/todo/internal/cmd/server"
	cfgpkg "github.com/rzbill/todo/internal/config"
	logpkg "github.com/rzbill/todo/pkg/log"
	"github.com/spf13/cobra"
)

func main() {
	// initialize logger for CLI
	// Respect TODO_LOG_LEVEL for both CLI and server start output
	level := os.Getenv("TODO_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	// Redirect standard library logs to our logger
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "Todo service CLI",
		Long:  "Todo is a single-binary HTTP todo service. This CLI manages the server and talks to its API.",
	}

	// server start
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	serverStartCmd := &cobra.Command{
		Use:     "start",
		Short:   "Start todo server (HTTP)",
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			httpAddr, _ := cmd.Flags().GetString("http")
			dataFile, _ := cmd.Flags().GetString("data-file")
			requestLog, _ := cmd.Flags().GetString("request-log")
			writeMode, _ := cmd.Flags().GetString("write-mode")
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")

			// Precedence: defaults < config file < env < flags.
			cfg := cfgpkg.Default()
			if configPath != "" {
				loaded, err := cfgpkg.Load(configPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cfg = loaded
			}
			cfgpkg.FromEnv(&cfg)
			if httpAddr != "" {
				cfg.HTTPAddr = httpAddr
			}
			if dataFile != "" {
				cfg.DataFile = dataFile
			}
			if requestLog != "" {
				cfg.RequestLog = requestLog
			}
			if writeMode != "" {
				cfg.WriteMode = writeMode
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			if err := serverrun.Run(ctx, serverrun.Options{
				HTTPAddr:   cfg.HTTPAddr,
				DataFile:   cfg.DataFile,
				RequestLog: cfg.RequestLog,
				Config:     cfg,
			}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			// brief delay to allow logs flush
			time.Sleep(100 * time.Millisecond)
			return nil
		},
	}
	serverStartCmd.Flags().String("config", "", "Config file (.json or .yaml)")
	serverStartCmd.Flags().String("http", "", "HTTP listen address (default :8080)")
	serverStartCmd.Flags().String("data-file", "", "Todo collection file (if not specified, uses OS-specific application data directory)")
	serverStartCmd.Flags().String("request-log", "", "Request log file (if not specified, uses OS-specific application data directory)")
	serverStartCmd.Flags().String("write-mode", "", "Write handling: serialized|unserialized (default serialized)")
	serverStartCmd.Flags().String("log-level", os.Getenv("TODO_LOG_LEVEL"), "Log level: debug|info|warn|error")
	serverStartCmd.Flags().String("log-format", os.Getenv("TODO_LOG_FORMAT"), "Log format: text|json (default text)")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)

	// client commands (HTTP API verbs)
	clientcmd.AddCommands(rootCmd, apiURL)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func apiURL() string {
	if v := os.Getenv("TODO_HTTP"); v != "" {
		return v
	}
	return "http://127.0.0.1:8080"
}
