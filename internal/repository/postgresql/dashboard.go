package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-portal-go/internal/domain/grievance"
	"github.com/cmlabs-hris/hr-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// CountPendingLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountPendingLeaves(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, string(leave.LeaveStatusPending)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leaves: %w", err)
	}
	return count, nil
}

// CountOpenGrievances implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountOpenGrievances(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM grievances WHERE status <> $1`, string(grievance.GrievanceStatusResolved)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count open grievances: %w", err)
	}
	return count, nil
}

// GetMonthlyLeaveCounts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) GetMonthlyLeaveCounts(ctx context.Context, limit int) ([]dashboard.MonthlyLeaveCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			EXTRACT(YEAR FROM applied_at)::int AS year,
			EXTRACT(MONTH FROM applied_at)::int AS month,
			COUNT(*) AS count
		FROM leave_requests
		GROUP BY year, month
		ORDER BY year DESC, month DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly leave counts: %w", err)
	}
	defer rows.Close()

	var counts []dashboard.MonthlyLeaveCount
	for rows.Next() {
		var c dashboard.MonthlyLeaveCount
		if err := rows.Scan(&c.Year, &c.Month, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan monthly leave count: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
