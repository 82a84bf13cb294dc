package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hr-portal-go/internal/domain/employee"
	"golang.org/x/sync/errgroup"
)

// monthlyLeaveWindow is how many months of leave trend the dashboard shows.
const monthlyLeaveWindow = 6

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	loc            *time.Location
	now            func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, employeeRepo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository, loc *time.Location) dashboard.DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		employeeRepo:        employeeRepo,
		attendanceRepo:      attendanceRepo,
		loc:                 loc,
		now:                 time.Now,
	}
}

// GetAnalytics returns the admin dashboard counts, fetched in parallel.
func (s *DashboardServiceImpl) GetAnalytics(ctx context.Context) (*dashboard.AnalyticsResponse, error) {
	today := s.now().In(s.loc).Format(attendance.DateLayout)

	var (
		totalEmployees  int64
		pendingLeaves   int64
		openGrievances  int64
		todayAttendance int64
		monthlyLeaves   []dashboard.MonthlyLeaveCount
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.employeeRepo.Count(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count employees: %w", err)
		}
		totalEmployees = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountPendingLeaves(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count pending leaves: %w", err)
		}
		pendingLeaves = count
		return nil
	})

	g.Go(func() error {
		count, err := s.CountOpenGrievances(gCtx)
		if err != nil {
			return fmt.Errorf("failed to count open grievances: %w", err)
		}
		openGrievances = count
		return nil
	})

	// Today's check-ins come from the ledger store, which may not be PostgreSQL.
	g.Go(func() error {
		count, err := s.attendanceRepo.CountCheckedIn(gCtx, today)
		if err != nil {
			return fmt.Errorf("failed to count today's attendance: %w", err)
		}
		todayAttendance = count
		return nil
	})

	g.Go(func() error {
		counts, err := s.GetMonthlyLeaveCounts(gCtx, monthlyLeaveWindow)
		if err != nil {
			return fmt.Errorf("failed to get monthly leave counts: %w", err)
		}
		monthlyLeaves = counts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	monthly := make([]dashboard.MonthlyLeaveResponse, 0, len(monthlyLeaves))
	for _, m := range monthlyLeaves {
		monthly = append(monthly, dashboard.MonthlyLeaveResponse{Year: m.Year, Month: m.Month, Count: m.Count})
	}

	return &dashboard.AnalyticsResponse{
		TotalEmployees:  totalEmployees,
		PendingLeaves:   pendingLeaves,
		OpenGrievances:  openGrievances,
		TodayAttendance: todayAttendance,
		Date:            today,
		MonthlyLeaves:   monthly,
	}, nil
}
