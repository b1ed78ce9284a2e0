package handlers

import (
	"encoding/json"
	"net/http"

	"staffdesk/models"
	"staffdesk/store"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeHandler struct {
	employees store.EmployeeStore
}

func NewEmployeeHandler(employees store.EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.GetAll()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}
	respondJSON(w, http.StatusOK, employees)
}

type createEmployeeRequest struct {
	EmployeeID string      `json:"employeeId"`
	Name       string      `json:"name"`
	Password   string      `json:"password"`
	Role       models.Role `json:"role"`
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.EmployeeID == "" || req.Name == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "employeeId, name and password are required")
		return
	}
	if req.Role != models.RoleAdmin && req.Role != models.RoleEmployee {
		respondError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	existing, err := h.employees.GetByEmployeeID(req.EmployeeID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create employee")
		return
	}
	if existing != nil {
		respondError(w, http.StatusBadRequest, "Employee ID already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to create employee")
		return
	}

	emp := &models.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Password:   string(hashedPassword),
		Role:       req.Role,
	}

	if err := h.employees.Create(emp); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to create employee")
		return
	}

	respondJSON(w, http.StatusCreated, emp)
}

// updateEmployeeRequest enumerates exactly the fields an update may touch;
// absent fields leave the stored value alone.
type updateEmployeeRequest struct {
	Name     *string      `json:"name"`
	Password *string      `json:"password"`
	Role     *models.Role `json:"role"`
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	emp, err := h.employees.GetByID(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to update employee")
		return
	}
	if emp == nil {
		respondError(w, http.StatusNotFound, "Employee not found")
		return
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Role != nil {
		if *req.Role != models.RoleAdmin && *req.Role != models.RoleEmployee {
			respondError(w, http.StatusBadRequest, "Invalid role")
			return
		}
		emp.Role = *req.Role
	}
	if req.Password != nil && *req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to update employee")
			return
		}
		emp.Password = string(hashedPassword)
	}

	if err := h.employees.Update(emp); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to update employee")
		return
	}

	respondJSON(w, http.StatusOK, emp)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// Historical attendance, task and leave rows for this employee are kept;
	// rosters render the name as "Unknown" afterwards.
	deleted, err := h.employees.Delete(id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete employee")
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, "Employee not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
