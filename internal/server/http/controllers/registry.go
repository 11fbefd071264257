package controllers

import (
	"net/http"

	"github.com/rzbill/todo/internal/runtime"
	todosvc "github.com/rzbill/todo/internal/services/todos"
)

// ControllerRegistry manages all HTTP controllers.
//
// It provides a centralized way to register all controller routes
// and manages the lifecycle of individual controllers.
type ControllerRegistry struct {
	general *GeneralController
	todos   *TodosController
}

// NewControllerRegistry creates a new controller registry.
//
// It initializes all controllers with the provided runtime and services.
func NewControllerRegistry(rt *runtime.Runtime, todosSvc *todosvc.Service) *ControllerRegistry {
	return &ControllerRegistry{
		general: NewGeneralController(rt),
		todos:   NewTodosController(todosSvc),
	}
}

// RegisterAllRoutes registers all controller routes with the given mux.
//
// This method sets up the full HTTP surface of the service: the todo CRUD
// endpoints and the general endpoints (health).
func (r *ControllerRegistry) RegisterAllRoutes(mux *http.ServeMux) {
	r.general.RegisterRoutes(mux)
	r.todos.RegisterRoutes(mux)
}
