package store

import (
	"errors"

	"staffdesk/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type TaskStore interface {
	Create(task *models.Task) error
	GetByID(id string) (*models.Task, error)
	ListByEmployee(employeeID string) ([]models.Task, error)
	ListAll() ([]models.Task, error)
	// UpdateStatus is the only mutation tasks receive after creation.
	UpdateStatus(id string, status models.TaskStatus) (*models.Task, error)
	CountByStatus(status models.TaskStatus) (int64, error)
	Count() (int64, error)
}

type GormTaskStore struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormTaskStore(db *gorm.DB) *GormTaskStore {
	return &GormTaskStore{
		db:     db,
		logger: newLogger(),
	}
}

func (s *GormTaskStore) Create(task *models.Task) error {
	result := s.db.Create(task)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to create task")
		return result.Error
	}

	s.logger.WithFields(logrus.Fields{
		"id":          task.ID,
		"assigned_to": task.AssignedTo,
	}).Info("Task created")
	return nil
}

func (s *GormTaskStore) GetByID(id string) (*models.Task, error) {
	var task models.Task
	result := s.db.Where("id = ?", id).First(&task)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to get task")
		return nil, result.Error
	}

	return &task, nil
}

func (s *GormTaskStore) ListByEmployee(employeeID string) ([]models.Task, error) {
	var tasks []models.Task
	result := s.db.Where("assigned_to = ?", employeeID).Find(&tasks)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to list tasks by employee")
		return nil, result.Error
	}
	return tasks, nil
}

func (s *GormTaskStore) ListAll() ([]models.Task, error) {
	var tasks []models.Task
	result := s.db.Find(&tasks)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to list tasks")
		return nil, result.Error
	}
	return tasks, nil
}

func (s *GormTaskStore) UpdateStatus(id string, status models.TaskStatus) (*models.Task, error) {
	task, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, nil
	}

	task.Status = status
	result := s.db.Model(task).Update("status", status)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to update task status")
		return nil, result.Error
	}

	s.logger.WithFields(logrus.Fields{
		"id":     id,
		"status": status,
	}).Info("Task status updated")
	return task, nil
}

func (s *GormTaskStore) CountByStatus(status models.TaskStatus) (int64, error) {
	var count int64
	result := s.db.Model(&models.Task{}).Where("status = ?", status).Count(&count)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to count tasks by status")
		return 0, result.Error
	}
	return count, nil
}

func (s *GormTaskStore) Count() (int64, error) {
	var count int64
	result := s.db.Model(&models.Task{}).Count(&count)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to count tasks")
		return 0, result.Error
	}
	return count, nil
}
