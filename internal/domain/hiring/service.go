package hiring

import "context"

type HiringService interface {
	SubmitFeedback(ctx context.Context, req SubmitFeedbackRequest) (FeedbackResponse, error)
	ListFeedback(ctx context.Context) ([]FeedbackResponse, error)
	CreateJobPosting(ctx context.Context, req CreateJobPostingRequest) (JobPostingResponse, error)
	ListActiveJobPostings(ctx context.Context) ([]JobPostingResponse, error)
}
