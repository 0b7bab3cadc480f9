package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	todoService "gotodo/internal/application/todo"
	domain "gotodo/internal/domain/todo"
)

type TodoHandler struct {
	service todoService.Service
}

func NewTodoHandler(service todoService.Service) *TodoHandler {
	return &TodoHandler{service: service}
}

// Collection handles GET and POST on /api/todos
func (h *TodoHandler) Collection(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIdentity(r.Context())
	if !ok {
		SendError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.list(w, id.UserID)
	case http.MethodPost:
		h.create(w, r, id.UserID)
	default:
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Stats handles GET /api/todos/stats
func (h *TodoHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := GetIdentity(r.Context())
	if !ok {
		SendError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	stats, err := h.service.Stats(id.UserID)
	if err != nil {
		SendError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	SendSuccess(w, http.StatusOK, "", stats)
}

// ByID handles /api/todos/{id} and /api/todos/{id}/toggle
func (h *TodoHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id, ok := GetIdentity(r.Context())
	if !ok {
		SendError(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/todos/")
	if rest == "" {
		SendError(w, "Todo not found", http.StatusNotFound)
		return
	}

	if todoID, found := strings.CutSuffix(rest, "/toggle"); found {
		if r.Method != http.MethodPatch {
			SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.toggle(w, todoID, id.UserID)
		return
	}

	if strings.Contains(rest, "/") {
		SendError(w, "Todo not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, rest, id.UserID)
	case http.MethodPut:
		h.update(w, r, rest, id.UserID)
	case http.MethodDelete:
		h.delete(w, rest, id.UserID)
	default:
		SendError(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TodoHandler) list(w http.ResponseWriter, userID string) {
	todos, err := h.service.List(userID)
	if err != nil {
		SendError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if todos == nil {
		todos = []domain.Todo{}
	}
	SendSuccess(w, http.StatusOK, "", todos)
}

func (h *TodoHandler) create(w http.ResponseWriter, r *http.Request, userID string) {
	var req domain.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.Create(userID, req)
	if err != nil {
		h.sendTodoError(w, err)
		return
	}

	SendSuccess(w, http.StatusCreated, "", t)
}

func (h *TodoHandler) get(w http.ResponseWriter, todoID, userID string) {
	t, err := h.service.Get(todoID, userID)
	if err != nil {
		h.sendTodoError(w, err)
		return
	}

	SendSuccess(w, http.StatusOK, "", t)
}

func (h *TodoHandler) update(w http.ResponseWriter, r *http.Request, todoID, userID string) {
	var req domain.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		SendError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	t, err := h.service.Update(todoID, userID, req)
	if err != nil {
		h.sendTodoError(w, err)
		return
	}

	SendSuccess(w, http.StatusOK, "", t)
}

func (h *TodoHandler) toggle(w http.ResponseWriter, todoID, userID string) {
	t, err := h.service.Toggle(todoID, userID)
	if err != nil {
		h.sendTodoError(w, err)
		return
	}

	SendSuccess(w, http.StatusOK, "", t)
}

func (h *TodoHandler) delete(w http.ResponseWriter, todoID, userID string) {
	if err := h.service.Delete(todoID, userID); err != nil {
		h.sendTodoError(w, err)
		return
	}

	SendSuccess(w, http.StatusOK, "Todo deleted successfully", nil)
}

func (h *TodoHandler) sendTodoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrTodoNotFound):
		SendError(w, "Todo not found", http.StatusNotFound)
	case errors.Is(err, domain.ErrTitleEmpty):
		SendValidationError(w, "Title is required")
	case errors.Is(err, domain.ErrTitleTooLong):
		SendValidationError(w, "Title must be at most 500 characters")
	default:
		SendError(w, "Internal server error", http.StatusInternalServerError)
	}
}
