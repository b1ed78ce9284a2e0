package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceRecord tracks one employee's presence for one calendar day.
// The composite unique index makes the store the arbiter for concurrent
// check-ins: at most one row per (employee_id, date) can ever exist.
//
// Date is the server-side UTC day (YYYY-MM-DD) computed at check-in, never
// client-supplied. LogoutTime is nil while the employee is still clocked in;
// setting it is the only mutation a record ever receives.
type AttendanceRecord struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string     `gorm:"not null;size:50;uniqueIndex:idx_attendance_employee_date" json:"employeeId"`
	Date       string     `gorm:"not null;size:10;uniqueIndex:idx_attendance_employee_date" json:"date"`
	LoginTime  time.Time  `gorm:"not null" json:"loginTime"`
	LogoutTime *time.Time `json:"logoutTime"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

func (a *AttendanceRecord) IsCheckedOut() bool {
	return a.LogoutTime != nil
}

// EnrichedAttendanceRecord is an AttendanceRecord joined with the employee's
// display name for rosters and exports.
type EnrichedAttendanceRecord struct {
	AttendanceRecord
	Name string `json:"name"`
}
