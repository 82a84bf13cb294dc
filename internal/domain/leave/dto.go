package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	EmpID       string `json:"empId"`
	StartDate   string `json:"startDate"` // YYYY-MM-DD
	EndDate     string `json:"endDate"`   // YYYY-MM-DD
	LeaveReason string `json:"leaveReason"`

	start time.Time
	end   time.Time
}

func (r *ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmpID = strings.TrimSpace(r.EmpID)
	r.LeaveReason = strings.TrimSpace(r.LeaveReason)

	errs.Require("empId", r.EmpID)
	errs.Require("startDate", r.StartDate)
	errs.Require("endDate", r.EndDate)
	errs.Require("leaveReason", r.LeaveReason)

	var startOK, endOK bool
	if r.StartDate != "" {
		if r.start, startOK = validator.IsValidDate(r.StartDate); !startOK {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != "" {
		if r.end, endOK = validator.IsValidDate(r.EndDate); !endOK {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be in YYYY-MM-DD format",
			})
		}
	}
	if startOK && endOK && r.end.Before(r.start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}
	if len(r.LeaveReason) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveReason",
			Message: "leaveReason must not exceed 1000 characters",
		})
	}

	return errs.Err()
}

// Dates returns the parsed range. Only meaningful after Validate succeeded.
func (r *ApplyLeaveRequest) Dates() (time.Time, time.Time) {
	return r.start, r.end
}

type ReviewLeaveRequest struct {
	Status        LeaveStatus `json:"status"`
	AdminComments string      `json:"adminComments"`
}

func (r *ReviewLeaveRequest) Validate() error {
	if r.Status != LeaveStatusApproved && r.Status != LeaveStatusRejected {
		return ErrInvalidReviewStatus
	}
	return nil
}

type LeaveRequestFilter struct {
	EmployeeID *string      `json:"empId,omitempty"`
	Status     *LeaveStatus `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *LeaveRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}
	if f.Status != nil && *f.Status != "" {
		valid := []string{string(LeaveStatusPending), string(LeaveStatusApproved), string(LeaveStatusRejected)}
		if !validator.IsInSlice(string(*f.Status), valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: Pending, Approved, Rejected",
			})
		}
	}

	return errs.Err()
}

type LeaveRequestResponse struct {
	ID            string      `json:"id"`
	EmpID         string      `json:"empId"`
	StartDate     string      `json:"startDate"`
	EndDate       string      `json:"endDate"`
	Days          int         `json:"days"`
	LeaveReason   string      `json:"leaveReason"`
	Status        LeaveStatus `json:"status"`
	AdminComments *string     `json:"adminComments,omitempty"`
	AppliedAt     time.Time   `json:"appliedAt"`
	ReviewedAt    *time.Time  `json:"reviewedAt,omitempty"`
}

type ListLeaveRequestResponse struct {
	TotalCount    int64                  `json:"totalCount"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
	TotalPages    int                    `json:"totalPages"`
	Showing       string                 `json:"showing"`
	LeaveRequests []LeaveRequestResponse `json:"leaveRequests"`
}

type BalanceEntry struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

type LeaveBalanceResponse struct {
	EmpID          string       `json:"empId"`
	CasualLeave    BalanceEntry `json:"casualLeave"`
	SickLeave      BalanceEntry `json:"sickLeave"`
	PrivilegeLeave BalanceEntry `json:"privilegeLeave"`
}
