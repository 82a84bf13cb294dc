package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hr-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hr-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hr-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hr-portal-go/internal/domain/grievance"
	"github.com/cmlabs-hris/hr-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hr-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance ledger rejections
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Error(w, http.StatusConflict, "ALREADY_CHECKED_IN", "Already checked in today")
	case errors.Is(err, attendance.ErrNoCheckInFound):
		Error(w, http.StatusConflict, "NO_CHECK_IN_FOUND", "No check-in record found for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Error(w, http.StatusConflict, "ALREADY_CHECKED_OUT", "Already checked out today")
	case errors.Is(err, attendance.ErrEmployeeMismatch):
		Error(w, http.StatusForbidden, "EMPLOYEE_MISMATCH", err.Error())

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidAdminCredentials):
		Error(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is inactive")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrEmployeeAccessRequired):
		Forbidden(w, "Employee account required")
	case errors.Is(err, auth.ErrAdminNotFound):
		NotFound(w, "Admin not found")
	case errors.Is(err, auth.ErrAdminExists):
		Conflict(w, "Admin ID already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeAlreadyExists):
		Conflict(w, "Employee ID or email already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrNoFieldsToUpdate):
		BadRequest(w, "No fields to update", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInvalidReviewStatus):
		BadRequest(w, err.Error(), nil)

	case errors.Is(err, grievance.ErrGrievanceNotFound):
		NotFound(w, "Grievance not found")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
