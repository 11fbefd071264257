// Package todosvc implements the todo repository on top of the collection
// file store. Operations are linear scans with a full load-mutate-save
// cycle per mutation; write serialization is controlled by the runtime
// configuration.
//
// Example:
//
//	svc := todosvc.New(rt)
//	created, _ := svc.Create(ctx, "Buy milk", false)
//	items, _ := svc.List(ctx, "completed == false")
//	_, _ = svc.Delete(ctx, created.ID)
package todosvc
