package store

import (
	"errors"
	"time"

	"staffdesk/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AttendanceStore persists the attendance ledger. The (employee_id, date)
// unique index backs the one-record-per-day invariant; Create surfaces
// gorm.ErrDuplicatedKey when a concurrent check-in loses the race.
type AttendanceStore interface {
	Create(rec *models.AttendanceRecord) error
	GetByID(id string) (*models.AttendanceRecord, error)
	GetByEmployeeAndDate(employeeID, date string) (*models.AttendanceRecord, error)
	ListByDate(date string) ([]models.AttendanceRecord, error)
	ListByMonth(month string) ([]models.AttendanceRecord, error)
	ListByEmployee(employeeID string) ([]models.AttendanceRecord, error)
	ListAll() ([]models.AttendanceRecord, error)
	// SetLogoutTime applies the single permitted mutation. The update is
	// guarded on logout_time IS NULL; false means the record was already
	// checked out (or does not exist).
	SetLogoutTime(id string, logoutTime time.Time) (bool, error)
	CountByEmployee(employeeID string) (int64, error)
	CountDistinctEmployeesByDate(date string) (int64, error)
	CountByMonth(month string) (int64, error)
}

type GormAttendanceStore struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormAttendanceStore(db *gorm.DB) *GormAttendanceStore {
	return &GormAttendanceStore{
		db:     db,
		logger: newLogger(),
	}
}

func (s *GormAttendanceStore) Create(rec *models.AttendanceRecord) error {
	result := s.db.Create(rec)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			s.logger.WithError(result.Error).Error("Failed to create attendance record")
		}
		return result.Error
	}

	s.logger.WithFields(logrus.Fields{
		"id":          rec.ID,
		"employee_id": rec.EmployeeID,
		"date":        rec.Date,
	}).Info("Attendance record created")
	return nil
}

func (s *GormAttendanceStore) GetByID(id string) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	result := s.db.Where("id = ?", id).First(&rec)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to get attendance record")
		return nil, result.Error
	}

	return &rec, nil
}

func (s *GormAttendanceStore) GetByEmployeeAndDate(employeeID, date string) (*models.AttendanceRecord, error) {
	var rec models.AttendanceRecord
	result := s.db.Where("employee_id = ? AND date = ?", employeeID, date).First(&rec)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to get attendance by employee and date")
		return nil, result.Error
	}

	return &rec, nil
}

func (s *GormAttendanceStore) ListByDate(date string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	result := s.db.Where("date = ?", date).Find(&records)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to list attendance by date")
		return nil, result.Error
	}
	return records, nil
}

// ListByMonth matches by string prefix on the first 7 characters of the
// date column (YYYY-MM), not by calendar range. Report consumers rely on
// the prefix semantics.
func (s *GormAttendanceStore) ListByMonth(month string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	result := s.db.Where("date LIKE ?", month+"%").Find(&records)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to list attendance by month")
		return nil, result.Error
	}
	return records, nil
}

func (s *GormAttendanceStore) ListByEmployee(employeeID string) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	result := s.db.Where("employee_id = ?", employeeID).Find(&records)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to list attendance by employee")
		return nil, result.Error
	}
	return records, nil
}

func (s *GormAttendanceStore) ListAll() ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	result := s.db.Find(&records)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to list attendance records")
		return nil, result.Error
	}
	return records, nil
}

func (s *GormAttendanceStore) SetLogoutTime(id string, logoutTime time.Time) (bool, error) {
	result := s.db.Model(&models.AttendanceRecord{}).
		Where("id = ? AND logout_time IS NULL", id).
		Update("logout_time", logoutTime)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to set logout time")
		return false, result.Error
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	s.logger.WithField("id", id).Info("Attendance record checked out")
	return true, nil
}

func (s *GormAttendanceStore) CountByEmployee(employeeID string) (int64, error) {
	var count int64
	result := s.db.Model(&models.AttendanceRecord{}).
		Where("employee_id = ?", employeeID).
		Count(&count)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to count attendance by employee")
		return 0, result.Error
	}
	return count, nil
}

func (s *GormAttendanceStore) CountDistinctEmployeesByDate(date string) (int64, error) {
	var count int64
	result := s.db.Model(&models.AttendanceRecord{}).
		Where("date = ?", date).
		Distinct("employee_id").
		Count(&count)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to count present employees")
		return 0, result.Error
	}
	return count, nil
}

func (s *GormAttendanceStore) CountByMonth(month string) (int64, error) {
	var count int64
	result := s.db.Model(&models.AttendanceRecord{}).
		Where("date LIKE ?", month+"%").
		Count(&count)
	if result.Error != nil {
		s.logger.WithError(result.Error).Error("Failed to count attendance by month")
		return 0, result.Error
	}
	return count, nil
}
