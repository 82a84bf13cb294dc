package employee

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/employee"
	"github.com/google/uuid"
)

type memoryRepository struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{employees: make(map[string]employee.Employee)}
}

func (m *memoryRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	emp, ok := m.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (m *memoryRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, emp := range m.employees {
		if emp.EmployeeID == employeeID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *memoryRepository) ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID string, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, emp := range m.employees {
		if emp.EmployeeID == employeeID || emp.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, emp := range m.employees {
		if emp.EmployeeID == newEmployee.EmployeeID || emp.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmployeeAlreadyExists
		}
	}
	newEmployee.ID = uuid.NewString()
	newEmployee.CreatedAt = time.Now()
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	m.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (m *memoryRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var matched []employee.Employee
	for _, emp := range m.employees {
		if filter.Search != nil && !strings.Contains(strings.ToLower(emp.FullName), strings.ToLower(*filter.Search)) {
			continue
		}
		matched = append(matched, emp)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].EmployeeID < matched[j].EmployeeID })

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start > len(matched) {
		start = len(matched)
	}
	end := min(start+filter.Limit, len(matched))
	return matched[start:end], total, nil
}

func (m *memoryRepository) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	emp, ok := m.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if req.Email != nil {
		for otherID, other := range m.employees {
			if otherID != id && other.Email == *req.Email {
				return employee.Employee{}, employee.ErrEmailExists
			}
		}
		emp.Email = *req.Email
	}
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Department != nil {
		emp.Department = req.Department
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.JoinDate != nil {
		joinDate, _ := time.Parse(time.DateOnly, *req.JoinDate)
		emp.JoinDate = &joinDate
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}
	emp.UpdatedAt = time.Now()
	m.employees[id] = emp
	return emp, nil
}

func (m *memoryRepository) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(m.employees, id)
	return nil
}

func (m *memoryRepository) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.employees)), nil
}
