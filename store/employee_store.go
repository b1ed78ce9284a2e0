package store

import (
	"errors"

	"staffdesk/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EmployeeStore is the directory of identity records. Lookups that miss
// return (nil, nil); errors are reserved for infrastructure failures.
type EmployeeStore interface {
	Create(emp *models.Employee) error
	GetByID(id string) (*models.Employee, error)
	GetByEmployeeID(employeeID string) (*models.Employee, error)
	GetAll() ([]models.Employee, error)
	Update(emp *models.Employee) error
	// Delete removes the identity only; attendance, task and leave rows that
	// reference the business key are intentionally left in place.
	Delete(id string) (bool, error)
	Count() (int64, error)
}

type GormEmployeeStore struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormEmployeeStore(db *gorm.DB) *GormEmployeeStore {
	return &GormEmployeeStore{
		db:     db,
		logger: newLogger(),
	}
}

func (s *GormEmployeeStore) Create(emp *models.Employee) error {
	result := s.db.Create(emp)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to create employee")
		return result.Error
	}

	s.logger.WithFields(logrus.Fields{
		"id":          emp.ID,
		"employee_id": emp.EmployeeID,
	}).Info("Employee created")
	return nil
}

func (s *GormEmployeeStore) GetByID(id string) (*models.Employee, error) {
	var emp models.Employee
	result := s.db.Where("id = ?", id).First(&emp)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to get employee by id")
		return nil, result.Error
	}

	return &emp, nil
}

func (s *GormEmployeeStore) GetByEmployeeID(employeeID string) (*models.Employee, error) {
	var emp models.Employee
	result := s.db.Where("employee_id = ?", employeeID).First(&emp)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to get employee by employee id")
		return nil, result.Error
	}

	return &emp, nil
}

func (s *GormEmployeeStore) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	result := s.db.Find(&employees)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to list employees")
		return nil, result.Error
	}
	return employees, nil
}

func (s *GormEmployeeStore) Update(emp *models.Employee) error {
	result := s.db.Save(emp)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to update employee")
		return result.Error
	}

	s.logger.WithFields(logrus.Fields{
		"id":          emp.ID,
		"employee_id": emp.EmployeeID,
	}).Info("Employee updated")
	return nil
}

func (s *GormEmployeeStore) Delete(id string) (bool, error) {
	result := s.db.Where("id = ?", id).Delete(&models.Employee{})
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to delete employee")
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	s.logger.WithField("id", id).Info("Employee deleted")
	return true, nil
}

func (s *GormEmployeeStore) Count() (int64, error) {
	var count int64
	result := s.db.Model(&models.Employee{}).Count(&count)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to count employees")
		return 0, result.Error
	}
	return count, nil
}
