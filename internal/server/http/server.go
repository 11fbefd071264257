package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/rzbill/todo/internal/requestlog"
	"github.com/rzbill/todo/internal/runtime"
	"github.com/rzbill/todo/internal/server/http/controllers"
	todosvc "github.com/rzbill/todo/internal/services/todos"
	logpkg "github.com/rzbill/todo/pkg/log"
)

// Server owns the HTTP listener, the route table, and the request-observed
// middleware.
type Server struct {
	srv      *http.Server
	lis      net.Listener
	logger   logpkg.Logger
	notifier *requestlog.Notifier
}

// New builds a Server with its own todos service and no request log.
func New(rt *runtime.Runtime, logger logpkg.Logger) *Server {
	return NewWithService(rt, todosvc.New(rt), nil, logger)
}

// NewWithService builds a Server around shared service instances. notifier
// may be nil, in which case requests are not logged to the request log.
func NewWithService(rt *runtime.Runtime, todos *todosvc.Service, notifier *requestlog.Notifier, logger logpkg.Logger) *Server {
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("http"))
	}
	mux := http.NewServeMux()
	controllers.NewControllerRegistry(rt, todos).RegisterAllRoutes(mux)
	s := &Server{logger: logger, notifier: notifier}
	s.srv = &http.Server{
		Handler:  s.observe(mux),
		ErrorLog: logpkg.ToStdLogger(logger, logpkg.WarnLevel),
	}
	return s
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lis = l
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) Close() {
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

// observe emits the request-observed notification for every request, routed
// or not, before handling it. The notification carries method and path only;
// the sink owns timestamping.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.notifier != nil {
			s.notifier.Notify(r.Method, r.URL.Path)
		}
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request handled",
			logpkg.Str("method", r.Method),
			logpkg.Str("path", r.URL.Path),
			logpkg.Dur("elapsed", time.Since(start)),
		)
	})
}
