package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

type Task struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	Title        string     `gorm:"not null;size:200" json:"title"`
	Description  string     `gorm:"not null;size:1000" json:"description"`
	AssignedTo   string     `gorm:"not null;size:50;index" json:"assignedTo"`
	AssignedDate string     `gorm:"not null;size:10" json:"assignedDate"`
	DueDate      string     `gorm:"not null;size:10" json:"dueDate"`
	Priority     string     `gorm:"not null;size:20" json:"priority"`
	Status       TaskStatus `gorm:"not null;size:20;default:Pending" json:"status"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
