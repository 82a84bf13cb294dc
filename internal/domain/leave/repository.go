package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// GetByEmployeeID returns the employee's requests, most recently applied first.
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	GetApprovedByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	// Review moves a Pending request to status. Returns ErrLeaveRequestNotFound
	// or ErrLeaveRequestAlreadyProcessed when it cannot.
	Review(ctx context.Context, id string, status LeaveStatus, adminComments string, reviewedAt time.Time) (LeaveRequest, error)
}
