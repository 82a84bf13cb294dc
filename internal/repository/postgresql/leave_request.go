package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `id, emp_id, start_date, end_date, leave_reason, status, admin_comments, applied_at, reviewed_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var request leave.LeaveRequest
	err := row.Scan(
		&request.ID, &request.EmployeeID, &request.StartDate, &request.EndDate, &request.LeaveReason,
		&request.Status, &request.AdminComments, &request.AppliedAt, &request.ReviewedAt,
	)
	return request, err
}

func (r *leaveRequestRepositoryImpl) queryLeaveRequests(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		request, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to generate leave request id: %w", err)
	}

	query := `
		INSERT INTO leave_requests (id, emp_id, start_date, end_date, leave_reason, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + leaveRequestColumns

	created, err := scanLeaveRequest(q.QueryRow(ctx, query,
		id.String(),
		request.EmployeeID,
		request.StartDate,
		request.EndDate,
		request.LeaveReason,
		string(request.Status),
		request.AppliedAt,
	))
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return r.getByID(ctx, id, false)
}

func (r *leaveRequestRepositoryImpl) getByID(ctx context.Context, id string, forUpdate bool) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(id); err != nil {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}

	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	request, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request %s: %w", id, err)
	}
	return request, nil
}

// GetByEmployeeID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	requests, err := r.queryLeaveRequests(ctx,
		`SELECT `+leaveRequestColumns+` FROM leave_requests WHERE emp_id = $1 ORDER BY applied_at DESC`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave requests for %s: %w", employeeID, err)
	}
	return requests, nil
}

// GetApprovedByEmployeeID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetApprovedByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	requests, err := r.queryLeaveRequests(ctx,
		`SELECT `+leaveRequestColumns+` FROM leave_requests WHERE emp_id = $1 AND status = $2 ORDER BY start_date`,
		employeeID, string(leave.LeaveStatusApproved),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved leave requests for %s: %w", employeeID, err)
	}
	return requests, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND emp_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filter.Status))
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM leave_requests WHERE "+baseWhere, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	page := filter.Page
	if page == 0 {
		page = 1
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests
		WHERE %s
		ORDER BY applied_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveRequestColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	requests, err := r.queryLeaveRequests(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query leave requests: %w", err)
	}
	return requests, total, nil
}

// Review implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Review(ctx context.Context, id string, status leave.LeaveStatus, adminComments string, reviewedAt time.Time) (leave.LeaveRequest, error) {
	var reviewed leave.LeaveRequest

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		current, err := r.getByID(txCtx, id, true)
		if err != nil {
			return err
		}
		if current.Status != leave.LeaveStatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		query := `
			UPDATE leave_requests
			SET status = $2, admin_comments = $3, reviewed_at = $4
			WHERE id = $1
			RETURNING ` + leaveRequestColumns

		reviewed, err = scanLeaveRequest(GetQuerier(txCtx, r.db).QueryRow(txCtx, query, id, string(status), adminComments, reviewedAt))
		if err != nil {
			return fmt.Errorf("failed to update leave request %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return reviewed, nil
}
