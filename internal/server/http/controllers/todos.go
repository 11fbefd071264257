package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	todosvc "github.com/rzbill/todo/internal/services/todos"
	"github.com/rzbill/todo/internal/todo"
)

// TodosController handles all todo-related HTTP endpoints.
//
// It provides the CRUD surface over the todos service: listing with an
// optional filter expression, fetching, creating, updating and deleting
// single items. The item id is always carried in the `id` query parameter,
// never in the path.
type TodosController struct {
	td *todosvc.Service
}

// NewTodosController creates a new todos controller around the todos
// service that performs the actual collection operations.
func NewTodosController(svc *todosvc.Service) *TodosController {
	return &TodosController{
		td: svc,
	}
}

// RegisterRoutes registers all todo-related routes with the given mux.
//
// This method sets up the HTTP endpoints for todo operations:
// - Collection operations (list, create) on /todos
// - Item operations (get, update, delete) on /todos/ with ?id=N
//
// Methods outside this table fall through to a plain 404, matching the
// behavior for unknown routes.
func (c *TodosController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/todos", c.handleCollection)
	mux.HandleFunc("/todos/", c.handleItem)
}

// handleCollection dispatches /todos by method.
func (c *TodosController) handleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.handleList(w, r)
	case http.MethodPost:
		c.handleCreate(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleItem dispatches /todos/ by method.
func (c *TodosController) handleItem(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.handleGet(w, r)
	case http.MethodPut:
		c.handleUpdate(w, r)
	case http.MethodDelete:
		c.handleDelete(w, r)
	default:
		http.NotFound(w, r)
	}
}

// handleList lists the whole collection, optionally narrowed by a filter
// expression in the `filter` query parameter.
func (c *TodosController) handleList(w http.ResponseWriter, r *http.Request) {
	items, err := c.td.List(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		if todosvc.IsValidation(err) {
			http.Error(w, "Invalid filter", http.StatusBadRequest)
			return
		}
		http.Error(w, "Error reading todos", http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

// handleGet fetches a single todo by id.
//
// Read failures, including a missing id, surface as a 500 plain-text error.
func (c *TodosController) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	item, err := c.td.Get(r.Context(), id)
	if err != nil {
		http.Error(w, "Error reading todo", http.StatusInternalServerError)
		return
	}
	writeJSON(w, item)
}

// handleCreate creates a todo from a JSON body.
func (c *TodosController) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTodoReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == nil || *req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	completed := false
	if req.Completed != nil {
		completed = *req.Completed
	}
	item, err := c.td.Create(r.Context(), *req.Title, completed)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Error saving todo")
		return
	}
	writeJSON(w, item)
}

// handleUpdate applies a partial update to the todo with the given id. The
// title must be present and non-empty; completed is optional.
func (c *TodosController) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req updateTodoReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == nil || *req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	item, err := c.td.Update(r.Context(), id, todo.Patch{Title: req.Title, Completed: req.Completed})
	if err != nil {
		if errors.Is(err, todosvc.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Todo not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error updating todo")
		return
	}
	writeJSON(w, item)
}

// handleDelete removes the todo with the given id and returns it.
func (c *TodosController) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	item, err := c.td.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, todosvc.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Todo not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Error deleting todo")
		return
	}
	writeJSON(w, item)
}
