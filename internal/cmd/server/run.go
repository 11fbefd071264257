package serverrun

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"sync"
	"syscall"

	cfgpkg "github.com/rzbill/todo/internal/config"
	"github.com/rzbill/todo/internal/requestlog"
	"github.com/rzbill/todo/internal/runtime"
	httpserver "github.com/rzbill/todo/internal/server/http"
	todosvc "github.com/rzbill/todo/internal/services/todos"
	logpkg "github.com/rzbill/todo/pkg/log"
)

func getenvDefault(key, def string) string {
	if v := func() string { return getenv(key) }(); v != "" {
		return v
	}
	return def
}

// small wrapper to allow testing; replaced by os.Getenv at build time
var getenv = func(key string) string { return os.Getenv(key) }

type Options struct {
	HTTPAddr   string
	DataFile   string
	RequestLog string
	Config     cfgpkg.Config
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	// Be robust to callers that don't pass a signal-aware context
	// or if signal delivery needs to be observed here. We layer a
	// local signal context over the provided one.
	sctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if opts.HTTPAddr == "" {
		opts.HTTPAddr = opts.Config.HTTPAddr
	}
	if opts.DataFile == "" {
		opts.DataFile = filepath.Join(cfgpkg.DefaultDataDir(), "todos.json")
	}
	if opts.RequestLog == "" {
		opts.RequestLog = filepath.Join(cfgpkg.DefaultDataDir(), "requests.log")
	}
	rt, err := runtime.Open(runtime.Options{DataFile: opts.DataFile, Config: opts.Config})
	if err != nil {
		return err
	}
	defer rt.Close()

	// Build process-wide logger from the carried config; defaults: level=info, format=text
	cfg := &logpkg.Config{
		Level:  opts.Config.LogLevel,
		Format: opts.Config.LogFormat,
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	procLogger, err := logpkg.ApplyConfig(cfg)
	if err != nil {
		// Fallback to a sane default
		lvl := logpkg.InfoLevel
		if l, e := logpkg.ParseLevel(cfg.Level); e == nil {
			lvl = l
		}
		procLogger = logpkg.NewLogger(logpkg.WithLevel(lvl), logpkg.WithFormatter(&logpkg.TextFormatter{}))
	}

	// Redirect stdlib logs (e.g., http.Server internals) to our logger
	logpkg.RedirectStdLog(procLogger)

	writeMode := opts.Config.WriteMode
	if writeMode == "" {
		writeMode = cfgpkg.WriteModeSerialized
	}

	// Log startup with unified logger/format and the active write mode
	procLogger.Info("Starting todo server",
		logpkg.Str("http", opts.HTTPAddr),
		logpkg.Str("data_file", opts.DataFile),
		logpkg.Str("request_log", opts.RequestLog),
		logpkg.Str("write_mode", writeMode),
		logpkg.Str("level", cfg.Level),
		logpkg.Str("format", cfg.Format),
		logpkg.Str("reqlog_buf", getenvDefault("TODO_REQLOG_BUF", "256")),
	)

	// Open the request log sink and its notifier.
	sink, err := requestlog.NewFileSink(opts.RequestLog)
	if err != nil {
		return err
	}
	bufLen, _ := strconv.Atoi(getenvDefault("TODO_REQLOG_BUF", "256"))
	notifier, err := requestlog.New(requestlog.Options{
		Sink:   sink,
		Buffer: bufLen,
		Logger: procLogger.With(logpkg.Component("requestlog")),
	})
	if err != nil {
		return err
	}

	// Create the shared service instance for the transport
	todosSvc := todosvc.NewWithLogger(rt, procLogger.With(logpkg.Component("todos")))
	hsrv := httpserver.NewWithService(rt, todosSvc, notifier, procLogger.With(logpkg.Component("http")))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := hsrv.ListenAndServe(sctx, opts.HTTPAddr); err != nil && sctx.Err() == nil {
			log.Printf("http error: %v", err)
		}
	}()

	<-sctx.Done()
	// Initiate graceful shutdown of the server before closing the notifier,
	// so queued request log lines are flushed after the last request.
	hsrv.Close()
	wg.Wait()
	if err := notifier.Close(); err != nil {
		procLogger.Warn("request log close", logpkg.Err(err))
	}
	return nil
}
