package handlers

import (
	"net/http"

	"staffdesk/middleware"
	"staffdesk/service"
)

type AttendanceHandler struct {
	attendance *service.AttendanceService
	stats      *service.StatsService
}

func NewAttendanceHandler(attendance *service.AttendanceService, stats *service.StatsService) *AttendanceHandler {
	return &AttendanceHandler{
		attendance: attendance,
		stats:      stats,
	}
}

// CheckIn marks the caller present for today. Employees can only check
// themselves in; the identity comes from the verified token, never the body.
func (h *AttendanceHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	emp := middleware.GetEmployeeFromContext(r.Context())

	rec, err := h.attendance.CheckIn(emp.EmployeeID)
	if err != nil {
		respondServiceError(w, err, "Failed to mark attendance")
		return
	}

	respondJSON(w, http.StatusCreated, rec)
}

func (h *AttendanceHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	emp := middleware.GetEmployeeFromContext(r.Context())

	rec, err := h.attendance.CheckOut(emp.EmployeeID)
	if err != nil {
		respondServiceError(w, err, "Failed to mark logout")
		return
	}

	respondJSON(w, http.StatusOK, rec)
}

func (h *AttendanceHandler) Today(w http.ResponseWriter, r *http.Request) {
	emp := middleware.GetEmployeeFromContext(r.Context())

	rec, err := h.attendance.TodayRecord(emp.EmployeeID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}

	// nil encodes as JSON null: "no record yet" is a valid answer.
	respondJSON(w, http.StatusOK, rec)
}

// List returns enriched attendance records. Admins may use any filter
// combination; a regular employee may only request their own history.
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	emp := middleware.GetEmployeeFromContext(r.Context())

	filter := service.Filter{
		Month:      r.URL.Query().Get("month"),
		Date:       r.URL.Query().Get("date"),
		EmployeeID: r.URL.Query().Get("employeeId"),
	}

	if !emp.CanViewAllAttendance() {
		selfOnly := filter.Month == "" && filter.Date == "" && filter.EmployeeID == emp.EmployeeID
		if !selfOnly {
			respondError(w, http.StatusForbidden, "Access denied. Admin only.")
			return
		}
	}

	records, err := h.attendance.List(filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}

	enriched, err := h.attendance.EnrichWithNames(records)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}

	respondJSON(w, http.StatusOK, enriched)
}

func (h *AttendanceHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.TodayStats()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch stats")
		return
	}
	respondJSON(w, http.StatusOK, stats)
}

func (h *AttendanceHandler) WorkingDays(w http.ResponseWriter, r *http.Request) {
	emp := middleware.GetEmployeeFromContext(r.Context())

	count, err := h.attendance.WorkingDays(emp.EmployeeID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch working days")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"workingDays": count})
}
