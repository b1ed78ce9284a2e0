package service

import (
	"strings"
	"time"

	"staffdesk/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeEmployeeStore struct {
	employees []models.Employee
}

func (f *fakeEmployeeStore) Create(emp *models.Employee) error {
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	f.employees = append(f.employees, *emp)
	return nil
}

func (f *fakeEmployeeStore) GetByID(id string) (*models.Employee, error) {
	for i := range f.employees {
		if f.employees[i].ID == id {
			emp := f.employees[i]
			return &emp, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeStore) GetByEmployeeID(employeeID string) (*models.Employee, error) {
	for i := range f.employees {
		if f.employees[i].EmployeeID == employeeID {
			emp := f.employees[i]
			return &emp, nil
		}
	}
	return nil, nil
}

func (f *fakeEmployeeStore) GetAll() ([]models.Employee, error) {
	return append([]models.Employee(nil), f.employees...), nil
}

func (f *fakeEmployeeStore) Update(emp *models.Employee) error {
	for i := range f.employees {
		if f.employees[i].ID == emp.ID {
			f.employees[i] = *emp
			return nil
		}
	}
	return nil
}

func (f *fakeEmployeeStore) Delete(id string) (bool, error) {
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employees = append(f.employees[:i], f.employees[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEmployeeStore) Count() (int64, error) {
	return int64(len(f.employees)), nil
}

// fakeAttendanceStore mirrors the store contract, including the duplicate-key
// error for a same-day insert and the guarded logout update.
type fakeAttendanceStore struct {
	records   []models.AttendanceRecord
	createErr error
}

func (f *fakeAttendanceStore) Create(rec *models.AttendanceRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	for i := range f.records {
		if f.records[i].EmployeeID == rec.EmployeeID && f.records[i].Date == rec.Date {
			return gorm.ErrDuplicatedKey
		}
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	f.records = append(f.records, *rec)
	return nil
}

func (f *fakeAttendanceStore) GetByID(id string) (*models.AttendanceRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceStore) GetByEmployeeAndDate(employeeID, date string) (*models.AttendanceRecord, error) {
	for i := range f.records {
		if f.records[i].EmployeeID == employeeID && f.records[i].Date == date {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceStore) ListByDate(date string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, rec := range f.records {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) ListByMonth(month string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, rec := range f.records {
		if strings.HasPrefix(rec.Date, month) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) ListByEmployee(employeeID string) ([]models.AttendanceRecord, error) {
	var out []models.AttendanceRecord
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceStore) ListAll() ([]models.AttendanceRecord, error) {
	return append([]models.AttendanceRecord(nil), f.records...), nil
}

func (f *fakeAttendanceStore) SetLogoutTime(id string, logoutTime time.Time) (bool, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			if f.records[i].LogoutTime != nil {
				return false, nil
			}
			t := logoutTime
			f.records[i].LogoutTime = &t
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendanceStore) CountByEmployee(employeeID string) (int64, error) {
	records, _ := f.ListByEmployee(employeeID)
	return int64(len(records)), nil
}

func (f *fakeAttendanceStore) CountDistinctEmployeesByDate(date string) (int64, error) {
	seen := make(map[string]bool)
	for _, rec := range f.records {
		if rec.Date == date {
			seen[rec.EmployeeID] = true
		}
	}
	return int64(len(seen)), nil
}

func (f *fakeAttendanceStore) CountByMonth(month string) (int64, error) {
	records, _ := f.ListByMonth(month)
	return int64(len(records)), nil
}

type fakeTaskStore struct {
	tasks []models.Task
}

func (f *fakeTaskStore) Create(task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	f.tasks = append(f.tasks, *task)
	return nil
}

func (f *fakeTaskStore) GetByID(id string) (*models.Task, error) {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			task := f.tasks[i]
			return &task, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskStore) ListByEmployee(employeeID string) ([]models.Task, error) {
	var out []models.Task
	for _, task := range f.tasks {
		if task.AssignedTo == employeeID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeTaskStore) ListAll() ([]models.Task, error) {
	return append([]models.Task(nil), f.tasks...), nil
}

func (f *fakeTaskStore) UpdateStatus(id string, status models.TaskStatus) (*models.Task, error) {
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Status = status
			task := f.tasks[i]
			return &task, nil
		}
	}
	return nil, nil
}

func (f *fakeTaskStore) CountByStatus(status models.TaskStatus) (int64, error) {
	var count int64
	for _, task := range f.tasks {
		if task.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeTaskStore) Count() (int64, error) {
	return int64(len(f.tasks)), nil
}

type fakeLeaveStore struct {
	requests []models.LeaveRequest
}

func (f *fakeLeaveStore) Create(req *models.LeaveRequest) error {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	f.requests = append(f.requests, *req)
	return nil
}

func (f *fakeLeaveStore) GetByID(id string) (*models.LeaveRequest, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			req := f.requests[i]
			return &req, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaveStore) ListByEmployee(employeeID string) ([]models.LeaveRequest, error) {
	var out []models.LeaveRequest
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveStore) ListAll() ([]models.LeaveRequest, error) {
	return append([]models.LeaveRequest(nil), f.requests...), nil
}

func (f *fakeLeaveStore) UpdateStatus(id string, status models.LeaveStatus) (*models.LeaveRequest, error) {
	for i := range f.requests {
		if f.requests[i].ID == id {
			f.requests[i].Status = status
			req := f.requests[i]
			return &req, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaveStore) CountByStatus(status models.LeaveStatus) (int64, error) {
	var count int64
	for _, req := range f.requests {
		if req.Status == status {
			count++
		}
	}
	return count, nil
}
