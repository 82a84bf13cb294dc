package leave

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/leave"
)

type memoryRepository struct {
	mu       sync.Mutex
	seq      int
	requests map[string]leave.LeaveRequest
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{requests: make(map[string]leave.LeaveRequest)}
}

func (m *memoryRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	request.ID = fmt.Sprintf("leave-%d", m.seq)
	m.requests[request.ID] = request
	return request, nil
}

func (m *memoryRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (m *memoryRepository) matching(keep func(leave.LeaveRequest) bool) []leave.LeaveRequest {
	var out []leave.LeaveRequest
	for _, request := range m.requests {
		if keep(request) {
			out = append(out, request)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AppliedAt.After(out[j].AppliedAt) })
	return out
}

func (m *memoryRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matching(func(r leave.LeaveRequest) bool { return r.EmployeeID == employeeID }), nil
}

func (m *memoryRepository) GetApprovedByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matching(func(r leave.LeaveRequest) bool {
		return r.EmployeeID == employeeID && r.Status == leave.LeaveStatusApproved
	}), nil
}

func (m *memoryRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	matched := m.matching(func(r leave.LeaveRequest) bool {
		if filter.Status != nil && r.Status != *filter.Status {
			return false
		}
		return filter.EmployeeID == nil || r.EmployeeID == *filter.EmployeeID
	})
	total := int64(len(matched))
	start := min((filter.Page-1)*filter.Limit, len(matched))
	end := min(start+filter.Limit, len(matched))
	return matched[start:end], total, nil
}

func (m *memoryRepository) Review(ctx context.Context, id string, status leave.LeaveStatus, adminComments string, reviewedAt time.Time) (leave.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	request, ok := m.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	if request.Status != leave.LeaveStatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}
	request.Status = status
	request.AdminComments = &adminComments
	request.ReviewedAt = &reviewedAt
	m.requests[id] = request
	return request, nil
}
