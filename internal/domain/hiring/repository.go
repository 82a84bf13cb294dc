package hiring

import "context"

type FeedbackRepository interface {
	Create(ctx context.Context, feedback Feedback) (Feedback, error)
	// List returns feedback newest first.
	List(ctx context.Context) ([]Feedback, error)
}

type JobPostingRepository interface {
	Create(ctx context.Context, job JobPosting) (JobPosting, error)
	// ListByStatus returns postings newest first.
	ListByStatus(ctx context.Context, status string) ([]JobPosting, error)
}
