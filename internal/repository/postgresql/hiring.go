package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/hiring"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/database"
	"github.com/google/uuid"
)

type feedbackRepositoryImpl struct {
	db *database.DB
}

func NewFeedbackRepository(db *database.DB) hiring.FeedbackRepository {
	return &feedbackRepositoryImpl{db: db}
}

// Create implements hiring.FeedbackRepository.
func (r *feedbackRepositoryImpl) Create(ctx context.Context, feedback hiring.Feedback) (hiring.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return hiring.Feedback{}, fmt.Errorf("failed to generate feedback id: %w", err)
	}

	query := `
		INSERT INTO hiring_feedback (id, emp_id, feedback, submitted_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, emp_id, feedback, submitted_at
	`

	var created hiring.Feedback
	err = q.QueryRow(ctx, query, id.String(), feedback.EmployeeID, feedback.Feedback, feedback.SubmittedAt).Scan(
		&created.ID, &created.EmployeeID, &created.Feedback, &created.SubmittedAt,
	)
	if err != nil {
		return hiring.Feedback{}, fmt.Errorf("failed to create hiring feedback: %w", err)
	}
	return created, nil
}

// List implements hiring.FeedbackRepository.
func (r *feedbackRepositoryImpl) List(ctx context.Context) ([]hiring.Feedback, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, emp_id, feedback, submitted_at FROM hiring_feedback ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query hiring feedback: %w", err)
	}
	defer rows.Close()

	var feedback []hiring.Feedback
	for rows.Next() {
		var f hiring.Feedback
		if err := rows.Scan(&f.ID, &f.EmployeeID, &f.Feedback, &f.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hiring feedback: %w", err)
		}
		feedback = append(feedback, f)
	}
	return feedback, rows.Err()
}

type jobPostingRepositoryImpl struct {
	db *database.DB
}

func NewJobPostingRepository(db *database.DB) hiring.JobPostingRepository {
	return &jobPostingRepositoryImpl{db: db}
}

const jobPostingColumns = `id, title, description, requirements, location, salary, status, posted_at`

// Create implements hiring.JobPostingRepository.
func (r *jobPostingRepositoryImpl) Create(ctx context.Context, job hiring.JobPosting) (hiring.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return hiring.JobPosting{}, fmt.Errorf("failed to generate job posting id: %w", err)
	}

	query := `
		INSERT INTO job_postings (id, title, description, requirements, location, salary, status, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + jobPostingColumns

	var created hiring.JobPosting
	err = q.QueryRow(ctx, query,
		id.String(), job.Title, job.Description, job.Requirements, job.Location, job.Salary, job.Status, job.PostedAt,
	).Scan(
		&created.ID, &created.Title, &created.Description, &created.Requirements,
		&created.Location, &created.Salary, &created.Status, &created.PostedAt,
	)
	if err != nil {
		return hiring.JobPosting{}, fmt.Errorf("failed to create job posting: %w", err)
	}
	return created, nil
}

// ListByStatus implements hiring.JobPostingRepository.
func (r *jobPostingRepositoryImpl) ListByStatus(ctx context.Context, status string) ([]hiring.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+jobPostingColumns+` FROM job_postings WHERE status = $1 ORDER BY posted_at DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query job postings: %w", err)
	}
	defer rows.Close()

	var jobs []hiring.JobPosting
	for rows.Next() {
		var job hiring.JobPosting
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Description, &job.Requirements,
			&job.Location, &job.Salary, &job.Status, &job.PostedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
