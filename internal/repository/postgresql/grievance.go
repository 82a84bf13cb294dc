package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/grievance"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type grievanceRepositoryImpl struct {
	db *database.DB
}

func NewGrievanceRepository(db *database.DB) grievance.GrievanceRepository {
	return &grievanceRepositoryImpl{db: db}
}

const grievanceColumns = `id, emp_id, grievance_text, status, admin_response, submitted_at, reviewed_at`

func scanGrievance(row pgx.Row) (grievance.Grievance, error) {
	var g grievance.Grievance
	err := row.Scan(&g.ID, &g.EmployeeID, &g.GrievanceText, &g.Status, &g.AdminResponse, &g.SubmittedAt, &g.ReviewedAt)
	return g, err
}

// Create implements grievance.GrievanceRepository.
func (r *grievanceRepositoryImpl) Create(ctx context.Context, g grievance.Grievance) (grievance.Grievance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return grievance.Grievance{}, fmt.Errorf("failed to generate grievance id: %w", err)
	}

	query := `
		INSERT INTO grievances (id, emp_id, grievance_text, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + grievanceColumns

	created, err := scanGrievance(q.QueryRow(ctx, query, id.String(), g.EmployeeID, g.GrievanceText, string(g.Status), g.SubmittedAt))
	if err != nil {
		return grievance.Grievance{}, fmt.Errorf("failed to create grievance: %w", err)
	}
	return created, nil
}

// List implements grievance.GrievanceRepository.
func (r *grievanceRepositoryImpl) List(ctx context.Context, filter grievance.GrievanceFilter) ([]grievance.Grievance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filter.Status))
		argIdx++
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM grievances WHERE "+baseWhere, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count grievances: %w", err)
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
		FROM grievances
		WHERE %s
		ORDER BY submitted_at DESC
		LIMIT $%d OFFSET $%d
	`, grievanceColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query grievances: %w", err)
	}
	defer rows.Close()

	var grievances []grievance.Grievance
	for rows.Next() {
		g, err := scanGrievance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan grievance: %w", err)
		}
		grievances = append(grievances, g)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate grievances: %w", err)
	}
	return grievances, total, nil
}

// UpdateStatus implements grievance.GrievanceRepository.
func (r *grievanceRepositoryImpl) UpdateStatus(ctx context.Context, id string, status grievance.GrievanceStatus, adminResponse string, reviewedAt time.Time) (grievance.Grievance, error) {
	q := GetQuerier(ctx, r.db)

	if _, err := uuid.Parse(id); err != nil {
		return grievance.Grievance{}, grievance.ErrGrievanceNotFound
	}

	query := `
		UPDATE grievances
		SET status = $2, admin_response = $3, reviewed_at = $4
		WHERE id = $1
		RETURNING ` + grievanceColumns

	updated, err := scanGrievance(q.QueryRow(ctx, query, id, string(status), adminResponse, reviewedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return grievance.Grievance{}, grievance.ErrGrievanceNotFound
		}
		return grievance.Grievance{}, fmt.Errorf("failed to update grievance %s: %w", id, err)
	}
	return updated, nil
}
