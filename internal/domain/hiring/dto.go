package hiring

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/validator"
)

type SubmitFeedbackRequest struct {
	EmpID    string `json:"empId"`
	Feedback string `json:"feedback"`
}

func (r *SubmitFeedbackRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmpID = strings.TrimSpace(r.EmpID)
	r.Feedback = strings.TrimSpace(r.Feedback)

	errs.Require("empId", r.EmpID)
	errs.Require("feedback", r.Feedback)

	return errs.Err()
}

type CreateJobPostingRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Requirements *string `json:"requirements,omitempty"`
	Location     *string `json:"location,omitempty"`
	Salary       *string `json:"salary,omitempty"`
}

func (r *CreateJobPostingRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)

	errs.Require("title", r.Title)
	errs.Require("description", r.Description)

	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}

	return errs.Err()
}

type FeedbackResponse struct {
	ID          string    `json:"id"`
	EmpID       string    `json:"empId"`
	Feedback    string    `json:"feedback"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type JobPostingResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements *string   `json:"requirements,omitempty"`
	Location     *string   `json:"location,omitempty"`
	Salary       *string   `json:"salary,omitempty"`
	Status       string    `json:"status"`
	PostedAt     time.Time `json:"postedAt"`
}
