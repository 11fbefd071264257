// Package requestlog implements the append-only request log.
//
// # Overview
//
// Every HTTP request the server observes produces one line in an external
// text file, newest last:
//
//	2025-01-02T15:04:05.000Z - GET - /todos
//
// Timestamps are UTC with millisecond precision and belong to the sink: the
// moment an event is written, not the moment the request arrived. The path
// excludes the query string.
//
// The log is decoupled from request handling. Notify enqueues the event on a
// buffered channel and returns immediately; a single worker goroutine drains
// the queue into the Sink. A full queue drops the event and counts the drop,
// and sink failures are logged and discarded, so the log can never slow down
// or fail a request.
//
// API surface (internal)
//
//	sink, _ := requestlog.NewFileSink("/var/lib/todo/requests.log")
//	n, _ := requestlog.New(requestlog.Options{Sink: sink})
//	defer n.Close() // stops intake, drains, closes the sink
//
//	n.Notify(r.Method, r.URL.Path)
package requestlog
