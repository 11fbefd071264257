// Package httpserver exposes the todo CRUD surface over HTTP with JSON
// bodies and an append-only request log fed by middleware.
//
// Example:
//
//	rt, _ := runtime.Open(runtime.Options{DataFile: "./data/todos.json", Config: config.Default()})
//	s := httpserver.New(rt, logger)
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = s.ListenAndServe(ctx, ":8080")
package httpserver
