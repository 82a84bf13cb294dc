package hiring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/hiring"
)

type HiringServiceImpl struct {
	feedbackRepo hiring.FeedbackRepository
	jobRepo      hiring.JobPostingRepository
	now          func() time.Time
}

func NewHiringService(feedbackRepo hiring.FeedbackRepository, jobRepo hiring.JobPostingRepository) hiring.HiringService {
	return &HiringServiceImpl{
		feedbackRepo: feedbackRepo,
		jobRepo:      jobRepo,
		now:          time.Now,
	}
}

// SubmitFeedback implements hiring.HiringService.
func (s *HiringServiceImpl) SubmitFeedback(ctx context.Context, req hiring.SubmitFeedbackRequest) (hiring.FeedbackResponse, error) {
	if err := req.Validate(); err != nil {
		return hiring.FeedbackResponse{}, err
	}

	created, err := s.feedbackRepo.Create(ctx, hiring.Feedback{
		EmployeeID:  req.EmpID,
		Feedback:    req.Feedback,
		SubmittedAt: s.now(),
	})
	if err != nil {
		return hiring.FeedbackResponse{}, fmt.Errorf("failed to create hiring feedback: %w", err)
	}

	slog.Info("Hiring feedback submitted", "employee_id", created.EmployeeID)
	return mapFeedbackToResponse(created), nil
}

// ListFeedback implements hiring.HiringService.
func (s *HiringServiceImpl) ListFeedback(ctx context.Context) ([]hiring.FeedbackResponse, error) {
	feedback, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list hiring feedback: %w", err)
	}

	responses := make([]hiring.FeedbackResponse, 0, len(feedback))
	for _, f := range feedback {
		responses = append(responses, mapFeedbackToResponse(f))
	}
	return responses, nil
}

// CreateJobPosting implements hiring.HiringService.
func (s *HiringServiceImpl) CreateJobPosting(ctx context.Context, req hiring.CreateJobPostingRequest) (hiring.JobPostingResponse, error) {
	if err := req.Validate(); err != nil {
		return hiring.JobPostingResponse{}, err
	}

	created, err := s.jobRepo.Create(ctx, hiring.JobPosting{
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Location:     req.Location,
		Salary:       req.Salary,
		Status:       hiring.JobStatusActive,
		PostedAt:     s.now(),
	})
	if err != nil {
		return hiring.JobPostingResponse{}, fmt.Errorf("failed to create job posting: %w", err)
	}

	slog.Info("Job posting created", "job_id", created.ID, "title", created.Title)
	return mapJobPostingToResponse(created), nil
}

// ListActiveJobPostings implements hiring.HiringService.
func (s *HiringServiceImpl) ListActiveJobPostings(ctx context.Context) ([]hiring.JobPostingResponse, error) {
	jobs, err := s.jobRepo.ListByStatus(ctx, hiring.JobStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}

	responses := make([]hiring.JobPostingResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, mapJobPostingToResponse(job))
	}
	return responses, nil
}

func mapFeedbackToResponse(f hiring.Feedback) hiring.FeedbackResponse {
	return hiring.FeedbackResponse{
		ID:          f.ID,
		EmpID:       f.EmployeeID,
		Feedback:    f.Feedback,
		SubmittedAt: f.SubmittedAt,
	}
}

func mapJobPostingToResponse(job hiring.JobPosting) hiring.JobPostingResponse {
	return hiring.JobPostingResponse{
		ID:           job.ID,
		Title:        job.Title,
		Description:  job.Description,
		Requirements: job.Requirements,
		Location:     job.Location,
		Salary:       job.Salary,
		Status:       job.Status,
		PostedAt:     job.PostedAt,
	}
}
