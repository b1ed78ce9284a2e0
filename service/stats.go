package service

import (
	"math"
	"time"

	"staffdesk/models"
	"staffdesk/store"

	"github.com/sirupsen/logrus"
)

// StatsService computes presence and analytics aggregates. It only reads;
// all state lives in the stores.
type StatsService struct {
	attendance store.AttendanceStore
	employees  store.EmployeeStore
	tasks      store.TaskStore
	leaves     store.LeaveStore
	logger     *logrus.Logger
	now        func() time.Time
}

func NewStatsService(attendance store.AttendanceStore, employees store.EmployeeStore, tasks store.TaskStore, leaves store.LeaveStore) *StatsService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &StatsService{
		attendance: attendance,
		employees:  employees,
		tasks:      tasks,
		leaves:     leaves,
		logger:     logger,
		now:        time.Now,
	}
}

type TodayStats struct {
	TotalEmployees int64 `json:"totalEmployees"`
	PresentToday   int64 `json:"presentToday"`
	AbsentToday    int64 `json:"absentToday"`
}

// TodayStats counts distinct employees with a record for the current UTC
// day against the directory size.
func (s *StatsService) TodayStats() (*TodayStats, error) {
	today := s.now().UTC().Format(DateLayout)

	total, err := s.employees.Count()
	if err != nil {
		return nil, err
	}

	present, err := s.attendance.CountDistinctEmployeesByDate(today)
	if err != nil {
		return nil, err
	}

	absent := total - present
	if absent < 0 {
		absent = 0
	}

	return &TodayStats{
		TotalEmployees: total,
		PresentToday:   present,
		AbsentToday:    absent,
	}, nil
}

type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// MonthlyTrend counts attendance records per calendar month for the last
// monthsBack months ending at the current one, oldest first. Records are
// bucketed by the YYYY-MM prefix of their date field.
func (s *StatsService) MonthlyTrend(monthsBack int) ([]MonthCount, error) {
	now := s.now().UTC()
	base := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	trend := make([]MonthCount, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		month := base.AddDate(0, -i, 0)
		count, err := s.attendance.CountByMonth(month.Format("2006-01"))
		if err != nil {
			return nil, err
		}
		trend = append(trend, MonthCount{
			Month: month.Format("Jan 2006"),
			Count: count,
		})
	}

	return trend, nil
}

type TaskCompletion struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Rate      int   `json:"rate"`
}

// TaskCompletion reports the completed-task percentage, rounded; zero when
// no tasks exist.
func (s *StatsService) TaskCompletion() (*TaskCompletion, error) {
	total, err := s.tasks.Count()
	if err != nil {
		return nil, err
	}

	completed, err := s.tasks.CountByStatus(models.TaskCompleted)
	if err != nil {
		return nil, err
	}

	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return &TaskCompletion{
		Total:     total,
		Completed: completed,
		Rate:      rate,
	}, nil
}

type LeaveBreakdown struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

func (s *StatsService) LeaveBreakdown() (*LeaveBreakdown, error) {
	pending, err := s.leaves.CountByStatus(models.LeavePending)
	if err != nil {
		return nil, err
	}
	approved, err := s.leaves.CountByStatus(models.LeaveApproved)
	if err != nil {
		return nil, err
	}
	rejected, err := s.leaves.CountByStatus(models.LeaveRejected)
	if err != nil {
		return nil, err
	}

	return &LeaveBreakdown{
		Pending:  pending,
		Approved: approved,
		Rejected: rejected,
	}, nil
}

type Analytics struct {
	MonthlyAttendance []MonthCount    `json:"monthlyAttendance"`
	TaskCompletion    *TaskCompletion `json:"taskCompletion"`
	LeaveRequests     *LeaveBreakdown `json:"leaveRequests"`
}

// Analytics composes the dashboard aggregates: the six-month attendance
// trend, the task completion rate and the leave-request breakdown.
func (s *StatsService) Analytics() (*Analytics, error) {
	trend, err := s.MonthlyTrend(6)
	if err != nil {
		return nil, err
	}

	tasks, err := s.TaskCompletion()
	if err != nil {
		return nil, err
	}

	leaves, err := s.LeaveBreakdown()
	if err != nil {
		return nil, err
	}

	return &Analytics{
		MonthlyAttendance: trend,
		TaskCompletion:    tasks,
		LeaveRequests:     leaves,
	}, nil
}
