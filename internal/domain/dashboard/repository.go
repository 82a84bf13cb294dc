package dashboard

import "context"

// MonthlyLeaveCount is the number of leave requests applied for in one calendar month.
type MonthlyLeaveCount struct {
	Year  int
	Month int
	Count int64
}

type DashboardRepository interface {
	CountPendingLeaves(ctx context.Context) (int64, error)
	// CountOpenGrievances counts grievances not yet Resolved.
	CountOpenGrievances(ctx context.Context) (int64, error)
	// GetMonthlyLeaveCounts returns the most recent months that have
	// applications, newest first, at most limit entries.
	GetMonthlyLeaveCounts(ctx context.Context, limit int) ([]MonthlyLeaveCount, error)
}
