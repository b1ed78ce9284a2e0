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

type LeaveHandler struct {
	leaves store.LeaveStore
}

func NewLeaveHandler(leaves store.LeaveStore) *LeaveHandler {
	return &LeaveHandler{leaves: leaves}
}

func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
	emp := middleware.GetEmployeeFromContext(r.Context())

	var (
		requests []models.LeaveRequest
		err      error
	)
	if emp.IsAdmin() {
		requests, err = h.leaves.ListAll()
	} else {
		requests, err = h.leaves.ListByEmployee(emp.EmployeeID)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch leave requests")
		return
	}

	respondJSON(w, http.StatusOK, requests)
}

type createLeaveRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
}

// Create files a leave request for the caller. The employee id always comes
// from the token, so nobody can request leave on someone else's behalf.
func (h *LeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	emp := middleware.GetEmployeeFromContext(r.Context())

	var req createLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.StartDate == "" || req.EndDate == "" {
		respondError(w, http.StatusBadRequest, "startDate and endDate are required")
		return
	}

	leave := &models.LeaveRequest{
		EmployeeID:  emp.EmployeeID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Reason:      req.Reason,
		Status:      models.LeavePending,
		AppliedDate: time.Now().UTC().Format(service.DateLayout),
	}

	if err := h.leaves.Create(leave); err != nil {
		respondError(w, http.StatusBadRequest, "Failed to create leave request")
		return
	}

	respondJSON(w, http.StatusCreated, leave)
}

type updateLeaveRequest struct {
	Status models.LeaveStatus `json:"status"`
}

func (h *LeaveHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Status != models.LeaveApproved && req.Status != models.LeaveRejected {
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	updated, err := h.leaves.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to update leave request")
		return
	}
	if updated == nil {
		respondError(w, http.StatusNotFound, "Leave request not found")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
