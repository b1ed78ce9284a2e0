package handlers

import (
	"encoding/csv"
	"net/http"

	"staffdesk/models"
	"staffdesk/service"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"Employee ID", "Name", "Date", "Login Time", "Logout Time"}

func exportRow(rec models.EnrichedAttendanceRecord) []string {
	logout := ""
	if rec.LogoutTime != nil {
		logout = rec.LogoutTime.Format("15:04:05")
	}
	return []string{
		rec.EmployeeID,
		rec.Name,
		rec.Date,
		rec.LoginTime.Format("15:04:05"),
		logout,
	}
}

func (h *AttendanceHandler) exportRecords(r *http.Request) ([]models.EnrichedAttendanceRecord, error) {
	filter := service.Filter{Month: r.URL.Query().Get("month")}

	records, err := h.attendance.List(filter)
	if err != nil {
		return nil, err
	}
	return h.attendance.EnrichWithNames(records)
}

// ExportCSV writes the enriched roster as CSV. An empty dataset still
// produces a valid header-only file.
func (h *AttendanceHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	enriched, err := h.exportRecords(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to export CSV")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=attendance.csv")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write(exportHeader)
	for _, rec := range enriched {
		writer.Write(exportRow(rec))
	}
}

func (h *AttendanceHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	enriched, err := h.exportRecords(r)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to export Excel")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	index, err := f.NewSheet(sheet)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to export Excel")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, rec := range enriched {
		for col, value := range exportRow(rec) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=attendance.xlsx")

	if err := f.Write(w); err != nil {
		// Headers are already sent; the response can't be salvaged.
		logrus.WithError(err).Error("Failed to write Excel export")
	}
}
