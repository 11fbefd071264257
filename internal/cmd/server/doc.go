// Package serverrun exposes a shared Run entrypoint used by the CLI to start
// the todo HTTP server, handling lifecycle and shutdown.
//
// Example:
//
//	opts := serverrun.Options{DataFile: "./data/todos.json", HTTPAddr: ":8080", Config: config.Default()}
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	_ = serverrun.Run(ctx, opts)
package serverrun
