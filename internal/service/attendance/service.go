package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/export"
)

// exportPageSize bounds each repository page read while building an export.
const exportPageSize = 100

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	loc *time.Location
	now func() time.Time
}

// NewAttendanceService builds the ledger. loc pins the zone in which "today"
// and the display times are computed; nil means UTC.
func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, loc *time.Location) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		loc:                  loc,
		now:                  time.Now,
	}
}

// today returns the date key and the current time in the ledger's zone.
func (a *AttendanceServiceImpl) today() (string, time.Time) {
	nowLocal := a.now().In(a.loc)
	return nowLocal.Format(attendance.DateLayout), nowLocal
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.AttendanceActionRequest) (attendance.AttendanceActionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceActionResponse{}, err
	}
	employeeID := req.Employee()
	date, nowLocal := a.today()
	checkInTime := nowLocal.Format(attendance.TimeLayout)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceActionResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if existing != nil {
		if existing.CheckIn != nil {
			return attendance.AttendanceActionResponse{}, attendance.ErrAlreadyCheckedIn
		}

		// A record without a check-in: fill it, but only if nobody else did first.
		updated, err := a.AttendanceRepository.SetCheckIn(ctx, employeeID, date, checkInTime)
		if err != nil {
			return attendance.AttendanceActionResponse{}, fmt.Errorf("failed to set check-in: %w", err)
		}
		if !updated {
			return attendance.AttendanceActionResponse{}, attendance.ErrAlreadyCheckedIn
		}
	} else {
		_, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
			EmployeeID: employeeID,
			Date:       date,
			CheckIn:    &checkInTime,
			Status:     attendance.StatusPresent,
		})
		if err != nil {
			// Lost the race against a concurrent check-in for the same day.
			if errors.Is(err, attendance.ErrDuplicateAttendance) {
				return attendance.AttendanceActionResponse{}, attendance.ErrAlreadyCheckedIn
			}
			return attendance.AttendanceActionResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
		}
	}

	slog.Info("Employee checked in", "employee_id", employeeID, "date", date, "time", checkInTime)

	return attendance.AttendanceActionResponse{
		EmployeeID: employeeID,
		Date:       date,
		Time:       checkInTime,
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.AttendanceActionRequest) (attendance.AttendanceActionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceActionResponse{}, err
	}
	employeeID := req.Employee()
	date, nowLocal := a.today()
	checkOutTime := nowLocal.Format(attendance.TimeLayout)

	updated, err := a.AttendanceRepository.SetCheckOut(ctx, employeeID, date, checkOutTime)
	if err != nil {
		return attendance.AttendanceActionResponse{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	if !updated {
		// Nothing matched; read once to tell the caller why.
		existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
		if err != nil {
			return attendance.AttendanceActionResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
		}
		if existing.State() == attendance.StateCheckedOut {
			return attendance.AttendanceActionResponse{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.AttendanceActionResponse{}, attendance.ErrNoCheckInFound
	}

	slog.Info("Employee checked out", "employee_id", employeeID, "date", date, "time", checkOutTime)

	return attendance.AttendanceActionResponse{
		EmployeeID: employeeID,
		Date:       date,
		Time:       checkOutTime,
	}, nil
}

// GetTodayStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetTodayStatus(ctx context.Context, req attendance.AttendanceActionRequest) (attendance.TodayStatusResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.TodayStatusResponse{}, err
	}
	employeeID := req.Employee()
	date, _ := a.today()

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	state := record.State()
	resp := attendance.TodayStatusResponse{
		EmployeeID: employeeID,
		Date:       date,
		State:      state,
		CheckedIn:  state != attendance.StateNotCheckedIn,
		CheckedOut: state == attendance.StateCheckedOut,
	}
	if record != nil {
		resp.CheckInTime = record.CheckIn
		resp.CheckOutTime = record.CheckOut
	}
	return resp, nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	// Map to response
	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, mapAttendanceToResponse(att))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}, nil
}

// ExportAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ExportAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]byte, error) {
	filter.Page = 1
	filter.Limit = exportPageSize
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	sheet := export.Sheet{
		Name:    "Attendance",
		Headers: []string{"Employee ID", "Date", "Check In", "Check Out", "Status"},
	}

	for {
		page, total, err := a.AttendanceRepository.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendances for export: %w", err)
		}
		for _, att := range page {
			sheet.Rows = append(sheet.Rows, []interface{}{
				att.EmployeeID,
				att.Date,
				stringOrEmpty(att.CheckIn),
				stringOrEmpty(att.CheckOut),
				att.Status,
			})
		}
		if len(page) == 0 || int64(filter.Page*filter.Limit) >= total {
			break
		}
		filter.Page++
	}

	data, err := export.XLSX(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to render attendance export: %w", err)
	}
	return data, nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:         att.ID,
		EmployeeID: att.EmployeeID,
		Date:       att.Date,
		CheckIn:    att.CheckIn,
		CheckOut:   att.CheckOut,
		Status:     att.Status,
		State:      att.State(),
	}
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
