package attendance

import (
	"strings"

	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE ACTION DTOs
// ========================================

// AttendanceActionRequest is the body of check-in, check-out and today calls.
// empId is accepted as an alias for employeeId.
type AttendanceActionRequest struct {
	EmployeeID string `json:"employeeId"`
	EmpID      string `json:"empId,omitempty"`
}

// Employee returns the trimmed employee id, preferring employeeId over empId.
func (r *AttendanceActionRequest) Employee() string {
	if !validator.IsEmpty(r.EmployeeID) {
		return strings.TrimSpace(r.EmployeeID)
	}
	return strings.TrimSpace(r.EmpID)
}

func (r *AttendanceActionRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Require("employeeId", r.Employee())

	return errs.Err()
}

type AttendanceActionResponse struct {
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Time       string `json:"time"`
}

type TodayStatusResponse struct {
	EmployeeID   string  `json:"employeeId"`
	Date         string  `json:"date"`
	State        State   `json:"state"`
	CheckedIn    bool    `json:"checkedIn"`
	CheckedOut   bool    `json:"checkedOut"`
	CheckInTime  *string `json:"checkInTime,omitempty"`
	CheckOutTime *string `json:"checkOutTime,omitempty"`
}

// ========================================
// ADMIN LISTING DTOs
// ========================================

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"empId"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"checkIn,omitempty"`
	CheckOut   *string `json:"checkOut,omitempty"`
	Status     string  `json:"status"`
	State      State   `json:"state"`
}

type AttendanceFilter struct {
	EmployeeID *string `json:"empId,omitempty"`
	StartDate  *string `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"endDate,omitempty"`   // YYYY-MM-DD

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	// Page validation
	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	// Limit validation
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20 // Default limit
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	start, startOK := f.validDate(f.StartDate)
	if f.StartDate != nil && *f.StartDate != "" && !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	end, endOK := f.validDate(f.EndDate)
	if f.EndDate != nil && *f.EndDate != "" && !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end < start {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	return errs.Err()
}

// validDate treats nil and blank as "not provided".
func (f *AttendanceFilter) validDate(s *string) (string, bool) {
	if s == nil || *s == "" {
		return "", false
	}
	if _, ok := validator.IsValidDate(*s); !ok {
		return "", false
	}
	return *s, true
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"totalCount"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"totalPages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}
