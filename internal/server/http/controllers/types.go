package controllers

// Common request types for HTTP controllers

// createTodoReq represents a request to create a new todo.
//
// Pointer fields distinguish absent keys from zero values, so a missing
// title can be rejected while `"completed": false` is honored.
type createTodoReq struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}

// updateTodoReq represents a partial update to an existing todo.
//
// Absent fields leave the stored value untouched.
type updateTodoReq struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
