package service

import (
	"errors"
	"time"

	"staffdesk/models"
	"staffdesk/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DateLayout is the calendar-day format used throughout the ledger.
const DateLayout = "2006-01-02"

// AttendanceService owns the attendance ledger: the check-in/check-out state
// machine and the read-side projections over it.
//
// "Today" is always the server's UTC day. Employees in other timezones see
// the same day boundary everywhere.
type AttendanceService struct {
	attendance store.AttendanceStore
	employees  store.EmployeeStore
	logger     *logrus.Logger
	now        func() time.Time
}

func NewAttendanceService(attendance store.AttendanceStore, employees store.EmployeeStore) *AttendanceService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &AttendanceService{
		attendance: attendance,
		employees:  employees,
		logger:     logger,
		now:        time.Now,
	}
}

// Today returns the current UTC calendar day.
func (s *AttendanceService) Today() string {
	return s.now().UTC().Format(DateLayout)
}

// CheckIn records the employee's arrival for today. The per-day state
// machine only moves forward: a second check-in the same day fails with
// ErrDuplicateCheckIn, whether or not the employee has checked out since.
func (s *AttendanceService) CheckIn(employeeID string) (*models.AttendanceRecord, error) {
	today := s.Today()

	existing, err := s.attendance.GetByEmployeeAndDate(employeeID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.WithFields(logrus.Fields{
			"employee_id": employeeID,
			"date":        today,
		}).Warn("Duplicate check-in attempt")
		return nil, ErrDuplicateCheckIn
	}

	rec := &models.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       today,
		LoginTime:  s.now().UTC(),
		LogoutTime: nil,
	}

	if err := s.attendance.Create(rec); err != nil {
		// The unique index on (employee_id, date) arbitrates concurrent
		// check-ins; the loser lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCheckIn
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"date":        today,
	}).Info("Employee checked in")
	return rec, nil
}

// CheckOut stamps the logout time on today's record. Setting logout_time is
// the only mutation an attendance record ever receives; the store guards the
// update so a raced second check-out observes ErrAlreadyCheckedOut.
func (s *AttendanceService) CheckOut(employeeID string) (*models.AttendanceRecord, error) {
	today := s.Today()

	rec, err := s.attendance.GetByEmployeeAndDate(employeeID, today)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNoActiveSession
	}
	if rec.IsCheckedOut() {
		return nil, ErrAlreadyCheckedOut
	}

	logoutTime := s.now().UTC()
	updated, err := s.attendance.SetLogoutTime(rec.ID, logoutTime)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrAlreadyCheckedOut
	}

	rec.LogoutTime = &logoutTime
	s.logger.WithFields(logrus.Fields{
		"employee_id": employeeID,
		"date":        today,
	}).Info("Employee checked out")
	return rec, nil
}

// TodayRecord returns the employee's record for the current day, or nil when
// the employee has not checked in yet.
func (s *AttendanceService) TodayRecord(employeeID string) (*models.AttendanceRecord, error) {
	return s.attendance.GetByEmployeeAndDate(employeeID, s.Today())
}

// Filter selects attendance records. When several fields are set, month
// wins over date, and date wins over employee; an empty filter selects
// everything. Callers pass multiple filters simultaneously and depend on
// this exact precedence.
type Filter struct {
	Month      string
	Date       string
	EmployeeID string
}

func (s *AttendanceService) List(f Filter) ([]models.AttendanceRecord, error) {
	switch {
	case f.Month != "":
		return s.attendance.ListByMonth(f.Month)
	case f.Date != "":
		return s.attendance.ListByDate(f.Date)
	case f.EmployeeID != "":
		return s.attendance.ListByEmployee(f.EmployeeID)
	default:
		return s.attendance.ListAll()
	}
}

// EnrichWithNames joins records against the directory. A record whose
// employee has been deleted keeps its history and displays as "Unknown".
func (s *AttendanceService) EnrichWithNames(records []models.AttendanceRecord) ([]models.EnrichedAttendanceRecord, error) {
	names := make(map[string]string)
	enriched := make([]models.EnrichedAttendanceRecord, 0, len(records))

	for _, rec := range records {
		name, ok := names[rec.EmployeeID]
		if !ok {
			emp, err := s.employees.GetByEmployeeID(rec.EmployeeID)
			if err != nil {
				return nil, err
			}
			name = "Unknown"
			if emp != nil {
				name = emp.Name
			}
			names[rec.EmployeeID] = name
		}

		enriched = append(enriched, models.EnrichedAttendanceRecord{
			AttendanceRecord: rec,
			Name:             name,
		})
	}

	return enriched, nil
}

// WorkingDays counts how many attendance records the employee has overall.
func (s *AttendanceService) WorkingDays(employeeID string) (int64, error) {
	return s.attendance.CountByEmployee(employeeID)
}
