package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const attendanceUniqueConstraint = "attendance_emp_id_date_key"

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `id, emp_id, date, check_in, check_out, status, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance WHERE emp_id = $1 AND date = $2`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance for employee %s on %s: %w", employeeID, date, err)
	}
	return &att, nil
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendance (id, emp_id, date, check_in, check_out, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		id.String(),
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		newAttendance.Status,
	))
	if err != nil {
		if database.IsUniqueViolation(err, attendanceUniqueConstraint) {
			return attendance.Attendance{}, attendance.ErrDuplicateAttendance
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// SetCheckIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetCheckIn(ctx context.Context, employeeID string, date string, checkIn string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET check_in = $3, status = $4, updated_at = NOW()
		WHERE emp_id = $1 AND date = $2 AND check_in IS NULL
	`

	commandTag, err := q.Exec(ctx, query, employeeID, date, checkIn, attendance.StatusPresent)
	if err != nil {
		return false, fmt.Errorf("failed to set check-in: %w", err)
	}
	return commandTag.RowsAffected() > 0, nil
}

// SetCheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepository) SetCheckOut(ctx context.Context, employeeID string, date string, checkOut string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET check_out = $3, updated_at = NOW()
		WHERE emp_id = $1 AND date = $2 AND check_in IS NOT NULL AND check_out IS NULL
	`

	commandTag, err := q.Exec(ctx, query, employeeID, date, checkOut)
	if err != nil {
		return false, fmt.Errorf("failed to set check-out: %w", err)
	}
	return commandTag.RowsAffected() > 0, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND emp_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	// Date range filter; the key is zero-padded so text order is date order.
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	// Count total
	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM attendance WHERE "+baseWhere, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM attendance
		WHERE %s
		ORDER BY date DESC, emp_id ASC
		LIMIT $%d OFFSET $%d
	`, attendanceColumns, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return attendances, total, nil
}

// CountCheckedIn implements attendance.AttendanceRepository.
func (a *attendanceRepository) CountCheckedIn(ctx context.Context, date string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE date = $1 AND check_in IS NOT NULL`, date).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count checked-in employees: %w", err)
	}
	return count, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
