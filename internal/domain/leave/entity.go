package leave

import (
	"strings"
	"time"
)

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "Pending"
	LeaveStatusApproved LeaveStatus = "Approved"
	LeaveStatusRejected LeaveStatus = "Rejected"
)

// LeaveCategory is the bucket a leave is charged against when computing balances.
type LeaveCategory string

const (
	CategoryCasual    LeaveCategory = "casual"
	CategorySick      LeaveCategory = "sick"
	CategoryPrivilege LeaveCategory = "privilege"
)

// Yearly entitlements per category.
const (
	CasualLeaveEntitlement    = 12
	SickLeaveEntitlement      = 10
	PrivilegeLeaveEntitlement = 15
)

type LeaveRequest struct {
	ID            string
	EmployeeID    string
	StartDate     time.Time
	EndDate       time.Time
	LeaveReason   string
	Status        LeaveStatus
	AdminComments *string
	AppliedAt     time.Time
	ReviewedAt    *time.Time
}

// Days counts calendar days, both ends inclusive.
func (l LeaveRequest) Days() int {
	start := time.Date(l.StartDate.Year(), l.StartDate.Month(), l.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(l.EndDate.Year(), l.EndDate.Month(), l.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// Category classifies the leave by keywords in its reason. "sick" wins over
// "casual"; anything else is privilege leave.
func (l LeaveRequest) Category() LeaveCategory {
	reason := strings.ToLower(l.LeaveReason)
	switch {
	case strings.Contains(reason, "sick"):
		return CategorySick
	case strings.Contains(reason, "casual"):
		return CategoryCasual
	default:
		return CategoryPrivilege
	}
}
