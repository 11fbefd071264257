// Package config provides loading and environment overlay for the todo
// service configuration. It exposes a Default() baseline, file loading in
// JSON or YAML, and a TODO_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	// Optionally load from file and overlay env vars
//	if fileCfg, err := config.Load("/etc/todo.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	// Pass cfg into runtime.Options
//	rt, _ := runtime.Open(runtime.Options{DataFile: "/var/lib/todo/todos.json", Config: cfg})
//	defer rt.Close()
package config
