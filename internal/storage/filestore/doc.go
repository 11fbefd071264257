// Package filestore persists the todo collection as a single pretty-printed
// JSON file with whole-file reads and rewrites, plus schema validation of
// loaded content.
//
// Usage:
//
//	st, err := filestore.Open(filestore.Options{Path: "./todos.json"})
//	if err != nil { /* handle */ }
//
//	items, _ := st.Load()
//	items = append(items, todo.Item{ID: 1, Title: "Buy milk"})
//	_ = st.Save(items)
package filestore
