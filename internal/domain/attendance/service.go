package attendance

import (
	"context"
)

// AttendanceService defines the attendance ledger operations
type AttendanceService interface {
	// CheckIn opens today's record for the employee
	CheckIn(ctx context.Context, req AttendanceActionRequest) (AttendanceActionResponse, error)

	// CheckOut closes today's record for the employee
	CheckOut(ctx context.Context, req AttendanceActionRequest) (AttendanceActionResponse, error)

	// GetTodayStatus reports the employee's state for today without mutating anything
	GetTodayStatus(ctx context.Context, req AttendanceActionRequest) (TodayStatusResponse, error)

	// ListAttendance retrieves attendance records with filters (admin)
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// ExportAttendance renders every record matching filter as an xlsx workbook (admin)
	ExportAttendance(ctx context.Context, filter AttendanceFilter) ([]byte, error)
}
