package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"staffdesk/middleware"
	"staffdesk/models"
	"staffdesk/service"
	"staffdesk/store"

	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	tasks store.TaskStore
}

func NewTaskHandler(tasks store.TaskStore) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	emp := middleware.GetEmployeeFromContext(r.Context())

	var (
		tasks []models.Task
		err   error
	)
	if emp.IsAdmin() {
		tasks, err = h.tasks.ListAll()
	} else {
		tasks, err = h.tasks.ListByEmployee(emp.EmployeeID)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch tasks")
		return
	}

	respondJSON(w, http.StatusOK, tasks)
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" || req.AssignedTo == "" {
		respondError(w, http.StatusBadRequest, "title and assignedTo are required")
		return
	}

	task := &models.Task{
		Title:        req.Title,
		Description:  req.Description,
		AssignedTo:   req.AssignedTo,
		AssignedDate: time.Now().UTC().Format(service.DateLayout),
		DueDate:      req.DueDate,
		Priority:     req.Priority,
		Status:       models.TaskPending,
	}

	if err := h.tasks.Create(task); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to create task")
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

type updateTaskRequest struct {
	Status models.TaskStatus `json:"status"`
}

// UpdateStatus lets the assignee (or an admin) move a task through its
// statuses. Status is the only mutable field.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	emp := middleware.GetEmployeeFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.tasks.GetByID(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update task")
		return
	}
	if task == nil {
		respondError(w, http.StatusNotFound, "Task not found")
		return
	}

	if !emp.IsAdmin() && task.AssignedTo != emp.EmployeeID {
		respondError(w, http.StatusForbidden, "Access denied")
		return
	}

	updated, err := h.tasks.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to update task")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
