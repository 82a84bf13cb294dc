package grievance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/validator"
)

type SubmitGrievanceRequest struct {
	EmpID         string `json:"empId"`
	GrievanceText string `json:"grievanceText"`
}

func (r *SubmitGrievanceRequest) Validate() error {
	var errs validator.ValidationErrors

	r.EmpID = strings.TrimSpace(r.EmpID)
	r.GrievanceText = strings.TrimSpace(r.GrievanceText)

	errs.Require("empId", r.EmpID)
	errs.Require("grievanceText", r.GrievanceText)

	if len(r.GrievanceText) > 5000 {
		errs = append(errs, validator.ValidationError{
			Field:   "grievanceText",
			Message: "grievanceText must not exceed 5000 characters",
		})
	}

	return errs.Err()
}

// UpdateGrievanceRequest defaults Status to "Under Review" when omitted.
type UpdateGrievanceRequest struct {
	Status        GrievanceStatus `json:"status"`
	AdminResponse string          `json:"adminResponse"`
}

func (r *UpdateGrievanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status == "" {
		r.Status = GrievanceStatusUnderReview
	}
	valid := []string{string(GrievanceStatusOpen), string(GrievanceStatusUnderReview), string(GrievanceStatusResolved)}
	if !validator.IsInSlice(string(r.Status), valid) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Open, Under Review, Resolved",
		})
	}
	r.AdminResponse = strings.TrimSpace(r.AdminResponse)

	return errs.Err()
}

type GrievanceFilter struct {
	Status *GrievanceStatus `json:"status,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *GrievanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	return errs.Err()
}

type GrievanceResponse struct {
	ID            string          `json:"id"`
	EmpID         string          `json:"empId"`
	GrievanceText string          `json:"grievanceText"`
	Status        GrievanceStatus `json:"status"`
	AdminResponse *string         `json:"adminResponse,omitempty"`
	SubmittedAt   time.Time       `json:"submittedAt"`
	ReviewedAt    *time.Time      `json:"reviewedAt,omitempty"`
}

type ListGrievanceResponse struct {
	TotalCount int64               `json:"totalCount"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"totalPages"`
	Grievances []GrievanceResponse `json:"grievances"`
}
