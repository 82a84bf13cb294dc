package attendance

import "errors"

// Attendance domain errors
var (
	// State machine rejections
	ErrAlreadyCheckedIn  = errors.New("already checked in today")
	ErrNoCheckInFound    = errors.New("no check-in record found for today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")

	// Employee identity
	ErrEmployeeMismatch = errors.New("employeeId does not match the authenticated employee")

	// ErrDuplicateAttendance is returned by repositories when the
	// (employee, date) unique key rejects an insert.
	ErrDuplicateAttendance = errors.New("attendance record already exists for employee and date")
)
