package leave

import "context"

type LeaveService interface {
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveRequestResponse, error)
	GetHistory(ctx context.Context, employeeID string) ([]LeaveRequestResponse, error)
	GetBalance(ctx context.Context, employeeID string) (LeaveBalanceResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) (ListLeaveRequestResponse, error)
	ReviewLeaveRequest(ctx context.Context, id string, req ReviewLeaveRequest) (LeaveRequestResponse, error)
}
