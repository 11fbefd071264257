// Package runtime wires storage and config into a single-node todo
// instance. It exposes Open/Close, basic health checks, and accessors used
// by higher-level services.
//
// Example:
//
//	cfg := config.Default()
//	rt, _ := runtime.Open(runtime.Options{DataFile: "./todos.json", Config: cfg})
//	defer rt.Close()
//	// Health
//	_ = rt.CheckHealth(context.Background())
//	// Load the collection
//	items, _ := rt.Store().Load()
package runtime
