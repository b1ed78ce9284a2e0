package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleEmployee Role = "Employee"
)

// Employee is the identity record. EmployeeID is the human-facing business
// key (e.g. "EMP001"); every attendance, task and leave row references it
// rather than the internal ID.
type Employee struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	EmployeeID string `gorm:"uniqueIndex;not null;size:50" json:"employeeId"`
	Name       string `gorm:"not null;size:200" json:"name"`
	Password   string `gorm:"not null" json:"-"`
	Role       Role   `gorm:"not null;size:20" json:"role"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// CanActFor reports whether the employee may perform a self-scoped
// operation on behalf of the given business key.
func (e *Employee) CanActFor(employeeID string) bool {
	if e.IsAdmin() {
		return true
	}
	return e.EmployeeID == employeeID
}

func (e *Employee) CanViewAllAttendance() bool {
	return e.IsAdmin()
}

func (e *Employee) CanExport() bool {
	return e.IsAdmin()
}
