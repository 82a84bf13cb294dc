package attendance

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/attendance"
	"github.com/google/uuid"
)

// memoryRepository is an in-memory attendance.AttendanceRepository that
// enforces the (employee, date) unique key the way the real stores do.
type memoryRepository struct {
	mu      sync.Mutex
	records map[string]*attendance.Attendance
	err     error

	// setCheckInErr fails only SetCheckIn, leaving reads intact.
	setCheckInErr error
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{records: make(map[string]*attendance.Attendance)}
}

func key(employeeID, date string) string { return employeeID + "|" + date }

func (m *memoryRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[key(employeeID, date)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memoryRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return attendance.Attendance{}, m.err
	}
	k := key(att.EmployeeID, att.Date)
	if _, exists := m.records[k]; exists {
		return attendance.Attendance{}, attendance.ErrDuplicateAttendance
	}
	att.ID = uuid.NewString()
	cp := att
	m.records[k] = &cp
	return att, nil
}

func (m *memoryRepository) SetCheckIn(ctx context.Context, employeeID string, date string, checkIn string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	if m.setCheckInErr != nil {
		return false, m.setCheckInErr
	}
	rec, ok := m.records[key(employeeID, date)]
	if !ok || rec.CheckIn != nil {
		return false, nil
	}
	rec.CheckIn = &checkIn
	rec.Status = attendance.StatusPresent
	return true, nil
}

func (m *memoryRepository) SetCheckOut(ctx context.Context, employeeID string, date string, checkOut string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	rec, ok := m.records[key(employeeID, date)]
	if !ok || rec.CheckIn == nil || rec.CheckOut != nil {
		return false, nil
	}
	rec.CheckOut = &checkOut
	return true, nil
}

func (m *memoryRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, 0, m.err
	}

	var matched []attendance.Attendance
	for _, rec := range m.records {
		if filter.EmployeeID != nil && *filter.EmployeeID != rec.EmployeeID {
			continue
		}
		if filter.StartDate != nil && rec.Date < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && rec.Date > *filter.EndDate {
			continue
		}
		matched = append(matched, *rec)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Date != matched[j].Date {
			return matched[i].Date > matched[j].Date
		}
		return matched[i].EmployeeID < matched[j].EmployeeID
	})

	total := int64(len(matched))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matched) {
		return []attendance.Attendance{}, total, nil
	}
	end := min(start+filter.Limit, len(matched))
	return matched[start:end], total, nil
}

func (m *memoryRepository) CountCheckedIn(ctx context.Context, date string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, rec := range m.records {
		if rec.Date == date && rec.CheckIn != nil {
			n++
		}
	}
	return n, nil
}

func (m *memoryRepository) count(employeeID, date string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, rec := range m.records {
		if rec.EmployeeID == employeeID && rec.Date == date {
			n++
		}
	}
	return n
}

// racingRepository makes every caller of GetByEmployeeAndDate wait until
// `readers` callers have read, so all of them observe "no record" before any
// of them inserts.
type racingRepository struct {
	*memoryRepository
	barrier sync.WaitGroup
}

func newRacingRepository(readers int) *racingRepository {
	r := &racingRepository{memoryRepository: newMemoryRepository()}
	r.barrier.Add(readers)
	return r
}

func (r *racingRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	rec, err := r.memoryRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	r.barrier.Done()
	r.barrier.Wait()
	return rec, err
}

var errStoreDown = errors.New("connection refused")
