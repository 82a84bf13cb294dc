package chatbot

import (
	"strings"

	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/validator"
)

type AskRequest struct {
	Query string `json:"query"`
	EmpID string `json:"empId,omitempty"`
}

func (r *AskRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Require("query", r.Query)
	if len(r.Query) > 2000 {
		errs = append(errs, validator.ValidationError{
			Field:   "query",
			Message: "query must not exceed 2000 characters",
		})
	}

	return errs.Err()
}

// Employee returns the trimmed empId or AnonymousEmployee.
func (r *AskRequest) Employee() string {
	if empID := strings.TrimSpace(r.EmpID); empID != "" {
		return empID
	}
	return AnonymousEmployee
}

type AskResponse struct {
	Response string `json:"response"`
}
