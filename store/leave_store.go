package store

import (
	"errors"

	"staffdesk/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type LeaveStore interface {
	Create(req *models.LeaveRequest) error
	GetByID(id string) (*models.LeaveRequest, error)
	ListByEmployee(employeeID string) ([]models.LeaveRequest, error)
	ListAll() ([]models.LeaveRequest, error)
	UpdateStatus(id string, status models.LeaveStatus) (*models.LeaveRequest, error)
	CountByStatus(status models.LeaveStatus) (int64, error)
}

type GormLeaveStore struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormLeaveStore(db *gorm.DB) *GormLeaveStore {
	return &GormLeaveStore{
		db:     db,
		logger: newLogger(),
	}
}

func (s *GormLeaveStore) Create(req *models.LeaveRequest) error {
	result := s.db.Create(req)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to create leave request")
		return result.Error
	}

	s.logger.WithFields(logrus.Fields{
		"id":          req.ID,
		"employee_id": req.EmployeeID,
	}).Info("Leave request created")
	return nil
}

func (s *GormLeaveStore) GetByID(id string) (*models.LeaveRequest, error) {
	var req models.LeaveRequest
	result := s.db.Where("id = ?", id).First(&req)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to get leave request")
		return nil, result.Error
	}

	return &req, nil
}

func (s *GormLeaveStore) ListByEmployee(employeeID string) ([]models.LeaveRequest, error) {
	var requests []models.LeaveRequest
	result := s.db.Where("employee_id = ?", employeeID).Find(&requests)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to list leave requests by employee")
		return nil, result.Error
	}
	return requests, nil
}

func (s *GormLeaveStore) ListAll() ([]models.LeaveRequest, error) {
	var requests []models.LeaveRequest
	result := s.db.Find(&requests)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to list leave requests")
		return nil, result.Error
	}
	return requests, nil
}

func (s *GormLeaveStore) UpdateStatus(id string, status models.LeaveStatus) (*models.LeaveRequest, error) {
	req, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, nil
	}

	req.Status = status
	result := s.db.Model(req).Update("status", status)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to update leave request status")
		return nil, result.Error
	}

	s.logger.WithFields(logrus.Fields{
		"id":     id,
		"status": status,
	}).Info("Leave request status updated")
	return req, nil
}

func (s *GormLeaveStore) CountByStatus(status models.LeaveStatus) (int64, error) {
	var count int64
	result := s.db.Model(&models.LeaveRequest{}).Where("status = ?", status).Count(&count)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to count leave requests by status")
		return 0, result.Error
	}
	return count, nil
}
