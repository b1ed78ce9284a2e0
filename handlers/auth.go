package handlers

import (
	"encoding/json"
	"net/http"

	"staffdesk/config"
	"staffdesk/middleware"
	"staffdesk/store"

	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	config    *config.Config
	employees store.EmployeeStore
}

func NewAuthHandler(cfg *config.Config, employees store.EmployeeStore) *AuthHandler {
	return &AuthHandler{
		config:    cfg,
		employees: employees,
	}
}

type loginRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	emp, err := h.employees.GetByEmployeeID(req.EmployeeID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	if emp == nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(req.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := middleware.GenerateToken(emp, h.config.JWTExpiration)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"employee": emp,
		"token":    token,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	emp := middleware.GetEmployeeFromContext(r.Context())
	if emp == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	respondJSON(w, http.StatusOK, emp)
}
