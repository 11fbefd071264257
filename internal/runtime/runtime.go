package runtime

import (
	"context"
	"errors"

	cfgpkg "github.com/rzbill/todo/internal/config"
	"github.com/rzbill/todo/internal/storage/filestore"
)

// Options for building the Runtime.
type Options struct {
	DataFile string
	Config   cfgpkg.Config
}

// Runtime wires storage and config for a single-node instance.
type Runtime struct {
	store  *filestore.Store
	config cfgpkg.Config
}

// Open initializes the underlying storage and returns a Runtime.
func Open(opts Options) (*Runtime, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	store, err := filestore.Open(filestore.Options{Path: opts.DataFile})
	if err != nil {
		return nil, err
	}
	return &Runtime{store: store, config: opts.Config}, nil
}

// Close closes underlying resources. The file store holds no handles, so
// this only exists for lifecycle symmetry with callers.
func (r *Runtime) Close() error {
	return nil
}

// CheckHealth performs a simple health check.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.store == nil {
		return errors.New("store not open")
	}
	return r.store.Ping()
}

// Store exposes the collection file store.
func (r *Runtime) Store() *filestore.Store { return r.store }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }
