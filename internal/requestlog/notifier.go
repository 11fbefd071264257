package requestlog

import (
	"errors"
	"sync"

	logpkg "github.com/rzbill/todo/pkg/log"
)

// defaultBuffer is the queue length between request handling and the sink.
const defaultBuffer = 256

// Options configures a Notifier.
type Options struct {
	// Sink receives the events. Required.
	Sink Sink
	// Buffer is the queue length; events beyond it are dropped. Defaults to
	// defaultBuffer.
	Buffer int
	// Logger receives drop and sink-error reports. Defaults to the package
	// logger.
	Logger logpkg.Logger
}

// Notifier hands observed requests to a sink through a buffered queue so the
// request path never waits on the log file. A single worker goroutine drains
// the queue; sink errors are logged and discarded.
type Notifier struct {
	sink   Sink
	logger logpkg.Logger
	ch     chan Event
	wg     sync.WaitGroup

	mu      sync.Mutex
	closed  bool
	dropped uint64
}

// New starts a Notifier around opts.Sink.
func New(opts Options) (*Notifier, error) {
	if opts.Sink == nil {
		return nil, errors.New("requestlog: Options.Sink is required")
	}
	buf := opts.Buffer
	if buf <= 0 {
		buf = defaultBuffer
	}
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("requestlog"))
	}
	n := &Notifier{
		sink:   opts.Sink,
		logger: logger,
		ch:     make(chan Event, buf),
	}
	n.wg.Add(1)
	go n.run()
	return n, nil
}

// Notify enqueues one observed request. It never blocks: when the queue is
// full the event is dropped and counted. Calls after Close are ignored.
func (n *Notifier) Notify(method, path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	select {
	case n.ch <- Event{Method: method, Path: path}:
	default:
		n.dropped++
	}
}

// Dropped reports how many events were discarded because the queue was full.
func (n *Notifier) Dropped() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.dropped
}

// Close stops intake, drains the queue, and closes the sink. Safe to call
// more than once.
func (n *Notifier) Close() error {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return nil
	}
	n.closed = true
	n.mu.Unlock()

	close(n.ch)
	n.wg.Wait()

	if d := n.Dropped(); d > 0 {
		n.logger.Warn("dropped request log events", logpkg.Int("count", int(d)))
	}
	return n.sink.Close()
}

func (n *Notifier) run() {
	defer n.wg.Done()
	for ev := range n.ch {
		if err := n.sink.Append(ev); err != nil {
			n.logger.Error("request log append failed", logpkg.Err(err))
		}
	}
}
