package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "Pending"
	LeaveApproved LeaveStatus = "Approved"
	LeaveRejected LeaveStatus = "Rejected"
)

type LeaveRequest struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID  string      `gorm:"not null;size:50;index" json:"employeeId"`
	StartDate   string      `gorm:"not null;size:10" json:"startDate"`
	EndDate     string      `gorm:"not null;size:10" json:"endDate"`
	Reason      string      `gorm:"not null;size:500" json:"reason"`
	Status      LeaveStatus `gorm:"not null;size:20;default:Pending" json:"status"`
	AppliedDate string      `gorm:"not null;size:10" json:"appliedDate"`
}

func (l *LeaveRequest) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
