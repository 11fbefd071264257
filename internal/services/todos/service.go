package todosvc

import (
	"context"
	"sync"

	"github.com/rzbill/todo/internal/config"
	"github.com/rzbill/todo/internal/runtime"
	"github.com/rzbill/todo/internal/todo"
	logpkg "github.com/rzbill/todo/pkg/log"
)

// Service provides todo CRUD over the collection file. Every operation
// loads the whole collection; every mutation rewrites it.
type Service struct {
	rt     *runtime.Runtime
	logger logpkg.Logger

	// serialize guards each write's load-mutate-save cycle with mu. When
	// false the service preserves the unserialized racy behavior.
	serialize bool
	mu        sync.Mutex
}

// New creates a todos service with default settings.
func New(rt *runtime.Runtime) *Service {
	logger := logpkg.NewLogger(logpkg.WithLevel(logpkg.InfoLevel))
	logger = logger.With(logpkg.F("component", "todos"))
	return NewWithLogger(rt, logger)
}

// NewWithLogger creates a todos service with a custom logger.
func NewWithLogger(rt *runtime.Runtime, logger logpkg.Logger) *Service {
	if logger == nil {
		logger = logpkg.NewLogger(logpkg.WithLevel(logpkg.InfoLevel))
		logger = logger.With(logpkg.F("component", "todos"))
	}
	s := &Service{
		rt:        rt,
		logger:    logger,
		serialize: rt.Config().WriteMode != config.WriteModeUnserialized,
	}
	s.logger.Debug("write serialization", logpkg.Bool("enabled", s.serialize))
	return s
}

// List returns the stored collection in file order. A non-empty filter is a
// CEL expression over the variables id (int), title (string), and completed
// (bool); items it rejects are dropped. An expression that does not compile
// yields a ValidationError.
func (s *Service) List(_ context.Context, filter string) ([]todo.Item, error) {
	f, err := newCELFilter(filter)
	if err != nil {
		return nil, &ValidationError{Field: "filter", Msg: err.Error()}
	}
	items, err := s.rt.Store().Load()
	if err != nil {
		return nil, err
	}
	if !f.enabled {
		return items, nil
	}
	out := make([]todo.Item, 0, len(items))
	for _, item := range items {
		if f.Eval(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

// Get returns the todo with the given id, or ErrNotFound.
func (s *Service) Get(_ context.Context, id int) (todo.Item, error) {
	items, err := s.rt.Store().Load()
	if err != nil {
		return todo.Item{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return todo.Item{}, ErrNotFound
}

// Create appends a new todo and returns it. The assigned id is one more
// than the id of the last element in the stored collection (1 when empty),
// not the maximum of all ids.
func (s *Service) Create(_ context.Context, title string, completed bool) (todo.Item, error) {
	s.lock()
	defer s.unlock()

	items, err := s.rt.Store().Load()
	if err != nil {
		return todo.Item{}, err
	}
	id := 1
	if len(items) > 0 {
		id = items[len(items)-1].ID + 1
	}
	item := todo.Item{ID: id, Title: title, Completed: completed}
	if err := s.rt.Store().Save(append(items, item)); err != nil {
		return todo.Item{}, err
	}
	s.logger.Debug("created todo", logpkg.Int("id", item.ID))
	return item, nil
}

// Update merges patch into the todo with the given id and returns the
// result. Nil patch fields keep their stored values.
func (s *Service) Update(_ context.Context, id int, patch todo.Patch) (todo.Item, error) {
	s.lock()
	defer s.unlock()

	items, err := s.rt.Store().Load()
	if err != nil {
		return todo.Item{}, err
	}
	for i, item := range items {
		if item.ID != id {
			continue
		}
		items[i] = patch.Apply(item)
		if err := s.rt.Store().Save(items); err != nil {
			return todo.Item{}, err
		}
		s.logger.Debug("updated todo", logpkg.Int("id", id), logpkg.Any("patch", patch))
		return items[i], nil
	}
	return todo.Item{}, ErrNotFound
}

// Delete removes the todo with the given id and returns it.
func (s *Service) Delete(_ context.Context, id int) (todo.Item, error) {
	s.lock()
	defer s.unlock()

	items, err := s.rt.Store().Load()
	if err != nil {
		return todo.Item{}, err
	}
	for i, item := range items {
		if item.ID != id {
			continue
		}
		if err := s.rt.Store().Save(append(items[:i], items[i+1:]...)); err != nil {
			return todo.Item{}, err
		}
		s.logger.Debug("deleted todo", logpkg.Int("id", id))
		return item, nil
	}
	return todo.Item{}, ErrNotFound
}

func (s *Service) lock() {
	if s.serialize {
		s.mu.Lock()
	}
}

func (s *Service) unlock() {
	if s.serialize {
		s.mu.Unlock()
	}
}
