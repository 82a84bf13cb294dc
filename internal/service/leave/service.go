package leave

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	now func() time.Time
}

func NewLeaveService(leaveRequestRepo leave.LeaveRequestRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepo,
		now:                    time.Now,
	}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	start, end := req.Dates()

	created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
		EmployeeID:  req.EmpID,
		StartDate:   start,
		EndDate:     end,
		LeaveReason: req.LeaveReason,
		Status:      leave.LeaveStatusPending,
		AppliedAt:   s.now(),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("Leave request submitted", "employee_id", created.EmployeeID, "leave_request_id", created.ID)
	return mapLeaveRequestToResponse(created), nil
}

// GetHistory implements leave.LeaveService.
func (s *LeaveServiceImpl) GetHistory(ctx context.Context, employeeID string) ([]leave.LeaveRequestResponse, error) {
	if err := requireEmployeeID(employeeID); err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.GetByEmployeeID(ctx, strings.TrimSpace(employeeID))
	if err != nil {
		return nil, fmt.Errorf("failed to get leave history: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapLeaveRequestToResponse(request))
	}
	return responses, nil
}

// GetBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID string) (leave.LeaveBalanceResponse, error) {
	if err := requireEmployeeID(employeeID); err != nil {
		return leave.LeaveBalanceResponse{}, err
	}
	employeeID = strings.TrimSpace(employeeID)

	approved, err := s.LeaveRequestRepository.GetApprovedByEmployeeID(ctx, employeeID)
	if err != nil {
		return leave.LeaveBalanceResponse{}, fmt.Errorf("failed to get approved leaves: %w", err)
	}

	used := map[leave.LeaveCategory]int{}
	for _, request := range approved {
		used[request.Category()] += request.Days()
	}

	return leave.LeaveBalanceResponse{
		EmpID:          employeeID,
		CasualLeave:    balanceEntry(leave.CasualLeaveEntitlement, used[leave.CategoryCasual]),
		SickLeave:      balanceEntry(leave.SickLeaveEntitlement, used[leave.CategorySick]),
		PrivilegeLeave: balanceEntry(leave.PrivilegeLeaveEntitlement, used[leave.CategoryPrivilege]),
	}, nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) (leave.ListLeaveRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveRequestResponse{}, err
	}

	requests, total, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveRequestResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, mapLeaveRequestToResponse(request))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return leave.ListLeaveRequestResponse{
		TotalCount:    total,
		Page:          filter.Page,
		Limit:         filter.Limit,
		TotalPages:    totalPages,
		Showing:       showing,
		LeaveRequests: responses,
	}, nil
}

// ReviewLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ReviewLeaveRequest(ctx context.Context, id string, req leave.ReviewLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	reviewed, err := s.LeaveRequestRepository.Review(ctx, id, req.Status, strings.TrimSpace(req.AdminComments), s.now())
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) || errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed) {
			return leave.LeaveRequestResponse{}, err
		}
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to review leave request: %w", err)
	}

	slog.Info("Leave request reviewed", "leave_request_id", id, "status", reviewed.Status)
	return mapLeaveRequestToResponse(reviewed), nil
}

func requireEmployeeID(employeeID string) error {
	var errs validator.ValidationErrors
	errs.Require("empId", employeeID)
	return errs.Err()
}

func balanceEntry(total, used int) leave.BalanceEntry {
	return leave.BalanceEntry{Total: total, Used: used, Remaining: total - used}
}

func mapLeaveRequestToResponse(request leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:            request.ID,
		EmpID:         request.EmployeeID,
		StartDate:     request.StartDate.Format(time.DateOnly),
		EndDate:       request.EndDate.Format(time.DateOnly),
		Days:          request.Days(),
		LeaveReason:   request.LeaveReason,
		Status:        request.Status,
		AdminComments: request.AdminComments,
		AppliedAt:     request.AppliedAt,
		ReviewedAt:    request.ReviewedAt,
	}
}
