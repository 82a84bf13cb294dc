package employee

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/validator"
)

type SignupRequest struct {
	FullName string `json:"fullName"`
	EmpID    string `json:"empId"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignupRequest) Validate() error {
	var errs validator.ValidationErrors

	r.FullName = strings.TrimSpace(r.FullName)
	r.EmpID = strings.TrimSpace(r.EmpID)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	errs.Require("fullName", r.FullName)
	errs.Require("empId", r.EmpID)
	errs.Require("email", r.Email)
	errs.Require("password", r.Password)

	if r.EmpID != "" && !validator.IsValidEmployeeID(r.EmpID) {
		errs = append(errs, validator.ValidationError{
			Field:   "empId",
			Message: "empId may only contain letters, numbers, underscores and hyphens (2-32 characters)",
		})
	}
	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Password != "" && len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters long",
		})
	}
	// bcrypt ignores everything past 72 bytes
	if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 72 characters",
		})
	}

	return errs.Err()
}

// UpdateEmployeeRequest is a partial update. Passwords cannot be changed here.
type UpdateEmployeeRequest struct {
	FullName   *string `json:"fullName,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
	Position   *string `json:"position,omitempty"`
	JoinDate   *string `json:"joinDate,omitempty"` // YYYY-MM-DD
	IsActive   *bool   `json:"isActive,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName == nil && r.Email == nil && r.Department == nil && r.Position == nil && r.JoinDate == nil && r.IsActive == nil {
		return ErrNoFieldsToUpdate
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName must not be empty",
		})
	}
	if r.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &email
		if !validator.IsValidEmail(email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email must be a valid email address",
			})
		}
	}
	if r.JoinDate != nil {
		if _, ok := validator.IsValidDate(*r.JoinDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "joinDate",
				Message: "joinDate must be in YYYY-MM-DD format",
			})
		}
	}

	return errs.Err()
}

type EmployeeFilter struct {
	Search     *string `json:"search,omitempty"`
	Department *string `json:"department,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *EmployeeFilter) Validate() error {
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

// EmployeeResponse never carries the password hash.
type EmployeeResponse struct {
	ID         string     `json:"id"`
	EmpID      string     `json:"empId"`
	FullName   string     `json:"fullName"`
	Email      string     `json:"email"`
	Department *string    `json:"department,omitempty"`
	Position   *string    `json:"position,omitempty"`
	JoinDate   *string    `json:"joinDate,omitempty"`
	IsActive   bool       `json:"isActive"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"totalCount"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
	Showing    string             `json:"showing"`
	Employees  []EmployeeResponse `json:"employees"`
}
